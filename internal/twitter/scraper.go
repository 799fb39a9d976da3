package twitter

import (
    "context"
    "errors"
    "fmt"
    "net/http"

    "github.com/dghubble/oauth1"
    twitterv2 "github.com/g8rswimmer/go-twitter/v2"
    twitterscraper "github.com/imperatrona/twitter-scraper"

    "github.com/dleerdefi/agent-twitter-client/internal/accounts"
)

// scraperClient is the production Client. Plain actions go through the
// scraper's cookie-authenticated private API; polls need the official v2
// API, which is only available when the account carries the full set of
// API credentials.
type scraperClient struct {
    creds   accounts.Credentials
    scraper *twitterscraper.Scraper
    v2      *twitterv2.Client
}

// NewScraperClient builds a Client for the given account credentials. It
// satisfies ClientFactory.
func NewScraperClient(creds accounts.Credentials) Client {
    c := &scraperClient{
        creds:   creds,
        scraper: twitterscraper.New(),
    }
    if creds.API.Complete() {
        oc := oauth1.NewConfig(creds.API.Key, creds.API.KeySecret)
        token := oauth1.NewToken(creds.API.AccessToken, creds.API.AccessTokenSecret)
        c.v2 = &twitterv2.Client{
            Authorizer: oauthAuthorizer{},
            Client:     oc.Client(oauth1.NoContext, token),
            Host:       "https://api.twitter.com",
        }
    }
    return c
}

// oauthAuthorizer satisfies the v2 client's Authorizer. The underlying
// oauth1 transport already signs every request, so there is nothing left
// to add here.
type oauthAuthorizer struct{}

func (oauthAuthorizer) Add(*http.Request) {}

func (c *scraperClient) Login(ctx context.Context) error {
    args := []string{c.creds.Username, c.creds.Password}
    if c.creds.Email != "" {
        args = append(args, c.creds.Email)
    }
    if err := c.scraper.Login(args...); err != nil {
        return fmt.Errorf("login as %q: %w", c.creds.Username, err)
    }
    if !c.scraper.IsLoggedIn() {
        return fmt.Errorf("login as %q: session not established", c.creds.Username)
    }
    return nil
}

func (c *scraperClient) SessionCookies() []Cookie {
    return CookiesFromHTTP(c.scraper.GetCookies())
}

func (c *scraperClient) SetSessionCookies(cookies []Cookie) {
    c.scraper.SetCookies(CookiesToHTTP(cookies))
}

func (c *scraperClient) PostTweet(ctx context.Context, text string, media []Media) (any, error) {
    var medias []*twitterscraper.Media
    for _, m := range media {
        uploaded, err := c.scraper.UploadMedia(m.Data, m.ContentType)
        if err != nil {
            return nil, fmt.Errorf("upload media: %w", err)
        }
        medias = append(medias, uploaded)
    }
    tweet, err := c.scraper.CreateTweet(twitterscraper.NewTweet{
        Text:   text,
        Medias: medias,
    })
    if err != nil {
        return nil, fmt.Errorf("create tweet: %w", err)
    }
    return tweet, nil
}

func (c *scraperClient) PostPoll(ctx context.Context, text string, media []Media, options []string, durationMinutes int) (any, error) {
    if c.v2 == nil {
        return nil, errors.New("posting polls requires the full api credential set (key, key secret, access token, access token secret)")
    }
    if len(media) > 0 {
        return nil, errors.New("poll tweets with media attachments are not supported by the api client")
    }
    resp, err := c.v2.CreateTweet(ctx, twitterv2.CreateTweetRequest{
        Text: text,
        Poll: &twitterv2.CreateTweetPoll{
            DurationMinutes: durationMinutes,
            Options:         options,
        },
    })
    if err != nil {
        return nil, fmt.Errorf("create poll tweet: %w", err)
    }
    return resp, nil
}

func (c *scraperClient) Like(ctx context.Context, tweetID string) (any, error) {
    if err := c.scraper.LikeTweet(tweetID); err != nil {
        return nil, fmt.Errorf("like tweet %s: %w", tweetID, err)
    }
    return map[string]string{"liked": tweetID}, nil
}

func (c *scraperClient) Retweet(ctx context.Context, tweetID string) (any, error) {
    if err := c.scraper.CreateRetweet(tweetID); err != nil {
        return nil, fmt.Errorf("retweet %s: %w", tweetID, err)
    }
    return map[string]string{"retweeted": tweetID}, nil
}

func (c *scraperClient) Follow(ctx context.Context, username string) (any, error) {
    if err := c.scraper.Follow(username); err != nil {
        return nil, fmt.Errorf("follow %s: %w", username, err)
    }
    return map[string]string{"followed": username}, nil
}
