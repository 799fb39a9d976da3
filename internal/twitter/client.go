// Package twitter narrows the upstream automation library down to the
// handful of operations this service actually performs. Handlers and the
// session provider talk to the Client interface only; the scraper adapter
// is the single place bound to the third-party library's exact shape.
package twitter

import (
    "context"
    "time"

    "github.com/dleerdefi/agent-twitter-client/internal/accounts"
)

// Cookie is one persisted session token. Field names are stable: session
// files written by one build must restore under the next.
type Cookie struct {
    Key      string     `json:"key"`
    Value    string     `json:"value"`
    Expires  *time.Time `json:"expires,omitempty"`
    Domain   string     `json:"domain"`
    Path     string     `json:"path"`
    Secure   bool       `json:"secure"`
    HTTPOnly bool       `json:"httpOnly"`
    SameSite string     `json:"sameSite"`
    HostOnly bool       `json:"hostOnly"`
}

// Media is a raw attachment: file bytes plus their media type.
type Media struct {
    Data        []byte
    ContentType string
}

// Client is the capability surface of an upstream client handle for a
// single account. Action results are opaque upstream payloads, forwarded
// to the caller as-is.
type Client interface {
    // Login authenticates with the credentials the client was built with.
    Login(ctx context.Context) error

    // SessionCookies extracts the current session tokens for persistence.
    SessionCookies() []Cookie

    // SetSessionCookies installs previously persisted session tokens.
    SetSessionCookies(cookies []Cookie)

    // PostTweet publishes a plain message, optionally with media.
    PostTweet(ctx context.Context, text string, media []Media) (any, error)

    // PostPoll publishes a message carrying a poll with the given option
    // labels and duration.
    PostPoll(ctx context.Context, text string, media []Media, options []string, durationMinutes int) (any, error)

    // Like marks the tweet with the given id as liked.
    Like(ctx context.Context, tweetID string) (any, error)

    // Retweet reposts the tweet with the given id.
    Retweet(ctx context.Context, tweetID string) (any, error)

    // Follow follows the user with the given username.
    Follow(ctx context.Context, username string) (any, error)
}

// ClientFactory builds a fresh, unauthenticated client handle for one
// account's credentials. The session provider calls it on every
// acquisition; tests substitute a fake.
type ClientFactory func(creds accounts.Credentials) Client
