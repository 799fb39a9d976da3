// Package twittertest provides an in-memory Client implementation for
// handler and session tests.
package twittertest

import (
    "context"
    "sync"

    "github.com/dleerdefi/agent-twitter-client/internal/accounts"
    "github.com/dleerdefi/agent-twitter-client/internal/twitter"
)

// Call records a single action invocation on a Fake.
type Call struct {
    Method   string
    Text     string
    Media    []twitter.Media
    Options  []string
    Duration int
    TweetID  string
    Username string
}

// Fake implements twitter.Client in memory. Zero value is usable: every
// action succeeds and returns a small map result. Error fields make the
// corresponding method fail; Result overrides the value actions return.
type Fake struct {
    mu sync.Mutex

    // LoginCookies become the session cookies after a successful Login.
    LoginCookies []twitter.Cookie

    LoginErr     error
    PostTweetErr error
    PostPollErr  error
    LikeErr      error
    RetweetErr   error
    FollowErr    error

    Result any

    LoginCalls   int
    RestoreCalls int
    Calls        []Call

    cookies []twitter.Cookie
}

var _ twitter.Client = (*Fake)(nil)

// NewFactory returns a ClientFactory that always hands out fake,
// recording the credentials of the last acquisition.
func NewFactory(fake *Fake) (twitter.ClientFactory, *accounts.Credentials) {
    last := &accounts.Credentials{}
    return func(creds accounts.Credentials) twitter.Client {
        *last = creds
        return fake
    }, last
}

func (f *Fake) Login(ctx context.Context) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.LoginCalls++
    if f.LoginErr != nil {
        return f.LoginErr
    }
    f.cookies = append([]twitter.Cookie(nil), f.LoginCookies...)
    return nil
}

func (f *Fake) SessionCookies() []twitter.Cookie {
    f.mu.Lock()
    defer f.mu.Unlock()
    return append([]twitter.Cookie(nil), f.cookies...)
}

func (f *Fake) SetSessionCookies(cookies []twitter.Cookie) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.RestoreCalls++
    f.cookies = append([]twitter.Cookie(nil), cookies...)
}

func (f *Fake) PostTweet(ctx context.Context, text string, media []twitter.Media) (any, error) {
    f.record(Call{Method: "PostTweet", Text: text, Media: media})
    if f.PostTweetErr != nil {
        return nil, f.PostTweetErr
    }
    return f.result("PostTweet"), nil
}

func (f *Fake) PostPoll(ctx context.Context, text string, media []twitter.Media, options []string, durationMinutes int) (any, error) {
    f.record(Call{Method: "PostPoll", Text: text, Media: media, Options: options, Duration: durationMinutes})
    if f.PostPollErr != nil {
        return nil, f.PostPollErr
    }
    return f.result("PostPoll"), nil
}

func (f *Fake) Like(ctx context.Context, tweetID string) (any, error) {
    f.record(Call{Method: "Like", TweetID: tweetID})
    if f.LikeErr != nil {
        return nil, f.LikeErr
    }
    return f.result("Like"), nil
}

func (f *Fake) Retweet(ctx context.Context, tweetID string) (any, error) {
    f.record(Call{Method: "Retweet", TweetID: tweetID})
    if f.RetweetErr != nil {
        return nil, f.RetweetErr
    }
    return f.result("Retweet"), nil
}

func (f *Fake) Follow(ctx context.Context, username string) (any, error) {
    f.record(Call{Method: "Follow", Username: username})
    if f.FollowErr != nil {
        return nil, f.FollowErr
    }
    return f.result("Follow"), nil
}

// LastCall returns the most recent action invocation, or a zero Call.
func (f *Fake) LastCall() Call {
    f.mu.Lock()
    defer f.mu.Unlock()
    if len(f.Calls) == 0 {
        return Call{}
    }
    return f.Calls[len(f.Calls)-1]
}

func (f *Fake) record(c Call) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.Calls = append(f.Calls, c)
}

func (f *Fake) result(method string) any {
    if f.Result != nil {
        return f.Result
    }
    return map[string]string{"method": method}
}
