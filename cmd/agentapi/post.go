package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dleerdefi/agent-twitter-client/internal/accounts"
	"github.com/dleerdefi/agent-twitter-client/internal/config"
	appLog "github.com/dleerdefi/agent-twitter-client/internal/log"
	"github.com/dleerdefi/agent-twitter-client/internal/session"
	"github.com/dleerdefi/agent-twitter-client/internal/twitter"
)

func postCmd() *cobra.Command {
	var account string
	var mediaPaths []string

	cmd := &cobra.Command{
		Use:   "post [message]",
		Short: "Post a tweet without running the server",
		Long:  `Post a single tweet from the command line, reusing any persisted session.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(account, args[0], mediaPaths)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account id (defaults to the configured default account)")
	cmd.Flags().StringSliceVar(&mediaPaths, "media", nil, "media file paths to attach")

	return cmd
}

func runPost(account, message string, mediaPaths []string) error {
	cfg, err := config.Parse([]string{})
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := appLog.New(cfg.LogLevel)

	if account == "" {
		account = cfg.DefaultAccount
	}

	var media []twitter.Media
	for _, p := range mediaPaths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read media file: %w", err)
		}
		media = append(media, twitter.Media{Data: data, ContentType: "image/jpeg"})
	}

	registry := accounts.NewRegistry(cfg.Accounts)
	store := session.NewStore(cfg.CookiesDir)
	provider := session.NewProvider(registry, store, twitter.NewScraperClient, logger)

	ctx := context.Background()
	client, err := provider.Acquire(ctx, account)
	if err != nil {
		return err
	}

	result, err := client.PostTweet(ctx, message, media)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
