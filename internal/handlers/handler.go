package handlers

import (
    "context"
    "log/slog"

    "github.com/dleerdefi/agent-twitter-client/internal/config"
    "github.com/dleerdefi/agent-twitter-client/internal/twitter"
)

// SessionAcquirer hands out an authenticated client for an account. The
// session provider implements it; tests substitute fakes.
type SessionAcquirer interface {
    Acquire(ctx context.Context, accountID string) (twitter.Client, error)
}

// Handler aggregates dependencies used by HTTP handlers.
type Handler struct {
    Config   config.Config
    Sessions SessionAcquirer
    Logger   *slog.Logger
}

func New(cfg config.Config, sessions SessionAcquirer, logger *slog.Logger) *Handler {
    return &Handler{Config: cfg, Sessions: sessions, Logger: logger}
}
