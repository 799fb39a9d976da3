package handlers

import (
    "context"
    "fmt"
    "net/http"
    "os"

    "github.com/gin-gonic/gin"

    "github.com/dleerdefi/agent-twitter-client/internal/twitter"
    "github.com/dleerdefi/agent-twitter-client/pkg/types"
)

// Poll duration applied when the request names options but no duration.
const defaultPollDurationMinutes = 60

// Media uploads are tagged as JPEG regardless of file extension; the
// upstream endpoint sniffs the real type server-side.
const mediaContentType = "image/jpeg"

// SendTweet handles POST /tweets/send. A request with pollOptions posts a
// poll, anything else a plain tweet with optional media attachments.
func (h *Handler) SendTweet(c *gin.Context) {
    var req types.SendTweetRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
        return
    }
    if req.Message == "" {
        c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "No message provided."})
        return
    }

    media, err := readMedia(req.MediaFilePaths)
    if err != nil {
        c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
        return
    }

    ctx := c.Request.Context()
    account := h.account(req.AccountID)
    client, err := h.Sessions.Acquire(ctx, account)
    if err != nil {
        h.Logger.Error("session acquisition failed", "account", account, "error", err)
        c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
        return
    }

    var result any
    if len(req.PollOptions) > 0 {
        duration := req.PollDurationMinutes
        if duration <= 0 {
            duration = defaultPollDurationMinutes
        }
        result, err = client.PostPoll(ctx, req.Message, media, req.PollOptions, duration)
    } else {
        result, err = client.PostTweet(ctx, req.Message, media)
    }
    if err != nil {
        h.Logger.Error("send tweet failed", "account", account, "error", err)
        c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
        return
    }
    c.JSON(http.StatusOK, types.ActionResponse{Success: true, Result: result})
}

// LikeTweet handles POST /tweets/like.
func (h *Handler) LikeTweet(c *gin.Context) {
    h.tweetAction(c, "like", func(ctx context.Context, client twitter.Client, id string) (any, error) {
        return client.Like(ctx, id)
    })
}

// Retweet handles POST /tweets/retweet.
func (h *Handler) Retweet(c *gin.Context) {
    h.tweetAction(c, "retweet", func(ctx context.Context, client twitter.Client, id string) (any, error) {
        return client.Retweet(ctx, id)
    })
}

// tweetAction runs an action that targets an existing tweet by id.
func (h *Handler) tweetAction(c *gin.Context, name string, action func(context.Context, twitter.Client, string) (any, error)) {
    var req types.TweetActionRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
        return
    }
    if req.TweetID == "" {
        c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "No tweetId provided."})
        return
    }

    ctx := c.Request.Context()
    account := h.account(req.AccountID)
    client, err := h.Sessions.Acquire(ctx, account)
    if err != nil {
        h.Logger.Error("session acquisition failed", "account", account, "error", err)
        c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
        return
    }

    result, err := action(ctx, client, req.TweetID)
    if err != nil {
        h.Logger.Error(name+" failed", "account", account, "tweet", req.TweetID, "error", err)
        c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
        return
    }
    c.JSON(http.StatusOK, types.ActionResponse{Success: true, Result: result})
}

// FollowUser handles POST /tweets/follow.
func (h *Handler) FollowUser(c *gin.Context) {
    var req types.FollowRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
        return
    }
    if req.Username == "" {
        c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "No username provided."})
        return
    }

    ctx := c.Request.Context()
    account := h.account(req.AccountID)
    client, err := h.Sessions.Acquire(ctx, account)
    if err != nil {
        h.Logger.Error("session acquisition failed", "account", account, "error", err)
        c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
        return
    }

    result, err := client.Follow(ctx, req.Username)
    if err != nil {
        h.Logger.Error("follow failed", "account", account, "username", req.Username, "error", err)
        c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
        return
    }
    c.JSON(http.StatusOK, types.ActionResponse{Success: true, Result: result})
}

// account applies the configured default when the request omits accountId.
func (h *Handler) account(id string) string {
    if id == "" {
        return h.Config.DefaultAccount
    }
    return id
}

// readMedia loads each media file into memory before any session work, so
// an unreadable path fails the request without touching upstream.
func readMedia(paths []string) ([]twitter.Media, error) {
    var media []twitter.Media
    for _, p := range paths {
        data, err := os.ReadFile(p)
        if err != nil {
            return nil, fmt.Errorf("read media file: %w", err)
        }
        media = append(media, twitter.Media{Data: data, ContentType: mediaContentType})
    }
    return media, nil
}
