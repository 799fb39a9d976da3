package server

import (
    "fmt"
    "log/slog"
    "net/http"
    "time"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"

    "github.com/dleerdefi/agent-twitter-client/internal/accounts"
    "github.com/dleerdefi/agent-twitter-client/internal/config"
    "github.com/dleerdefi/agent-twitter-client/internal/handlers"
    "github.com/dleerdefi/agent-twitter-client/internal/session"
    "github.com/dleerdefi/agent-twitter-client/internal/twitter"
    "github.com/dleerdefi/agent-twitter-client/pkg/types"
)

// Server wraps the Gin engine and dependencies.
type Server struct {
    Engine   *gin.Engine
    Handler  *handlers.Handler
    Sessions *session.Provider
}

// New constructs a configured Gin server with routes and middleware.
func New(cfg config.Config, logger *slog.Logger) *Server {
    gin.SetMode(gin.ReleaseMode)
    r := gin.New()

    r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
        logger.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
        c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: "internal server error"})
    }))
    r.Use(gin.Logger())

    r.Use(cors.New(cors.Config{
        AllowAllOrigins:  true,
        AllowMethods:     []string{"GET", "POST", "OPTIONS"},
        AllowHeaders:     []string{"Content-Type"},
        AllowCredentials: false,
        MaxAge:           12 * time.Hour,
    }))

    registry := accounts.NewRegistry(cfg.Accounts)
    store := session.NewStore(cfg.CookiesDir)
    provider := session.NewProvider(registry, store, twitter.NewScraperClient, logger)
    handler := handlers.New(cfg, provider, logger)

    // public routes
    r.GET("/health", handler.Health)
    r.GET("/", handler.Root)

    // action routes
    tweets := r.Group("/tweets")
    tweets.POST("/send", handler.SendTweet)
    tweets.POST("/like", handler.LikeTweet)
    tweets.POST("/retweet", handler.Retweet)
    tweets.POST("/follow", handler.FollowUser)

    return &Server{Engine: r, Handler: handler, Sessions: provider}
}

// Run starts the HTTP server.
func (s *Server) Run(host string, port int) error {
    addr := fmt.Sprintf("%s:%d", host, port)
    return s.Engine.Run(addr)
}
