package session

import (
    "context"
    "fmt"
    "log/slog"
    "sync"

    "github.com/dleerdefi/agent-twitter-client/internal/accounts"
    "github.com/dleerdefi/agent-twitter-client/internal/twitter"
)

// Provider hands out authenticated clients. Each Acquire restores the
// account's persisted session when one exists and logs in fresh otherwise;
// a per-account lock keeps concurrent requests from racing through the
// login flow and clobbering each other's cookie file.
type Provider struct {
    registry *accounts.Registry
    store    *Store
    factory  twitter.ClientFactory
    logger   *slog.Logger

    mu    sync.Mutex
    locks map[string]*sync.Mutex
}

// NewProvider wires a Provider from its dependencies.
func NewProvider(registry *accounts.Registry, store *Store, factory twitter.ClientFactory, logger *slog.Logger) *Provider {
    if logger == nil {
        logger = slog.Default()
    }
    return &Provider{
        registry: registry,
        store:    store,
        factory:  factory,
        logger:   logger,
        locks:    make(map[string]*sync.Mutex),
    }
}

// Acquire returns a client authenticated for accountID. Restored cookies
// are trusted as-is; whether they are still valid upstream only shows up
// when the action itself runs. Unknown accounts fail with
// accounts.ErrNotFound.
func (p *Provider) Acquire(ctx context.Context, accountID string) (twitter.Client, error) {
    creds, err := p.registry.Lookup(accountID)
    if err != nil {
        return nil, err
    }

    lock := p.accountLock(accountID)
    lock.Lock()
    defer lock.Unlock()

    client := p.factory(creds)

    cookies, err := p.store.Load(accountID)
    if err != nil {
        p.logger.Warn("ignoring unreadable session file", "account", accountID, "error", err)
    }
    if len(cookies) > 0 {
        client.SetSessionCookies(cookies)
        p.logger.Info("session restored from disk", "account", accountID, "cookies", len(cookies))
        return client, nil
    }

    p.logger.Info("logging in", "account", accountID, "username", creds.Username)
    if err := client.Login(ctx); err != nil {
        return nil, fmt.Errorf("acquire session for %q: %w", accountID, err)
    }
    if err := p.store.Save(accountID, client.SessionCookies()); err != nil {
        p.logger.Warn("session established but cookies not persisted", "account", accountID, "error", err)
    } else {
        p.logger.Info("session cookies persisted", "account", accountID, "file", p.store.Path(accountID))
    }
    return client, nil
}

func (p *Provider) accountLock(accountID string) *sync.Mutex {
    p.mu.Lock()
    defer p.mu.Unlock()
    l, ok := p.locks[accountID]
    if !ok {
        l = &sync.Mutex{}
        p.locks[accountID] = l
    }
    return l
}
