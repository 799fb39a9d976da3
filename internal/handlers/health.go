package handlers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/dleerdefi/agent-twitter-client/pkg/types"
)

func (h *Handler) Health(c *gin.Context) {
    c.JSON(http.StatusOK, types.HealthResponse{Status: "ok"})
}

func (h *Handler) Root(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{
        "name":        "agent-twitter-client",
        "description": "HTTP API for posting tweets, likes, retweets and follows on behalf of configured accounts",
        "endpoints": gin.H{
            "health":  "/health",
            "send":    "/tweets/send",
            "like":    "/tweets/like",
            "retweet": "/tweets/retweet",
            "follow":  "/tweets/follow",
        },
    })
}
