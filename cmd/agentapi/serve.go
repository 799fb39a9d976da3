package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dleerdefi/agent-twitter-client/internal/config"
	appLog "github.com/dleerdefi/agent-twitter-client/internal/log"
	"github.com/dleerdefi/agent-twitter-client/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  `Start the HTTP server exposing tweet, like, retweet and follow actions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse(os.Args[1:])
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			logger := appLog.New(cfg.LogLevel)
			return runServer(cfg, logger)
		},
	}
}

func runServer(cfg config.Config, logger *slog.Logger) error {
	for _, id := range cfg.SkippedAccounts {
		logger.Warn("account skipped: missing username or password", "account", id)
	}
	if len(cfg.Accounts) == 0 {
		logger.Warn("no accounts configured; actions will fail until credentials are set")
	}

	srv := server.New(cfg, logger)

	// graceful shutdown notifier
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		s := <-sigCh
		logger.Info("received signal, exiting", "signal", s.String())
		os.Exit(0)
	}()

	logger.Info("starting agent twitter client api", "host", cfg.Host, "port", cfg.Port, "accounts", len(cfg.Accounts))
	if err := srv.Run(cfg.Host, cfg.Port); err != nil {
		logger.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
