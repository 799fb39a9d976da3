package types

// HTTP request/response types for the twitter action API.

// SendTweetRequest posts a new tweet, optionally with media read from
// local files or an attached poll.
type SendTweetRequest struct {
    AccountID           string   `json:"accountId"`
    Message             string   `json:"message"`
    MediaFilePaths      []string `json:"mediaFilePaths,omitempty"`
    PollOptions         []string `json:"pollOptions,omitempty"`
    PollDurationMinutes int      `json:"pollDurationMinutes,omitempty"`
}

// TweetActionRequest targets an existing tweet (like, retweet).
type TweetActionRequest struct {
    AccountID string `json:"accountId"`
    TweetID   string `json:"tweetId"`
}

// FollowRequest follows a user by handle.
type FollowRequest struct {
    AccountID string `json:"accountId"`
    Username  string `json:"username"`
}

// ActionResponse wraps a successful action's upstream result.
type ActionResponse struct {
    Success bool `json:"success"`
    Result  any  `json:"result"`
}

// ErrorResponse carries a single error message.
type ErrorResponse struct {
    Error string `json:"error"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
    Status string `json:"status"`
}
