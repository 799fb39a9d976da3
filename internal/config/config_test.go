package config

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
    cfg := Defaults()

    assert.Equal(t, "0.0.0.0", cfg.Host)
    assert.Equal(t, 3000, cfg.Port)
    assert.Equal(t, "info", cfg.LogLevel)
    assert.Equal(t, ".", cfg.CookiesDir)
    assert.Equal(t, "default", cfg.DefaultAccount)
    assert.Empty(t, cfg.Accounts)
}

func TestApplyEnvOverlaysBasics(t *testing.T) {
    t.Setenv("HOST", "127.0.0.1")
    t.Setenv("PORT", "8080")
    t.Setenv("LOG_LEVEL", "debug")
    t.Setenv("COOKIES_DIR", "/var/lib/agentapi")

    cfg := Defaults()
    cfg.ApplyEnv()

    assert.Equal(t, "127.0.0.1", cfg.Host)
    assert.Equal(t, 8080, cfg.Port)
    assert.Equal(t, "debug", cfg.LogLevel)
    assert.Equal(t, "/var/lib/agentapi", cfg.CookiesDir)
}

func TestApplyEnvIgnoresBadPort(t *testing.T) {
    t.Setenv("PORT", "not-a-number")

    cfg := Defaults()
    cfg.ApplyEnv()

    assert.Equal(t, 3000, cfg.Port)
}

func TestApplyEnvDefaultAccount(t *testing.T) {
    t.Setenv("TWITTER_USERNAME", "alice")
    t.Setenv("TWITTER_PASSWORD", "hunter2")
    t.Setenv("TWITTER_EMAIL", "alice@example.com")
    t.Setenv("TWITTER_API_KEY", "k")
    t.Setenv("TWITTER_API_SECRET_KEY", "ks")
    t.Setenv("TWITTER_ACCESS_TOKEN", "at")
    t.Setenv("TWITTER_ACCESS_TOKEN_SECRET", "ats")

    cfg := Defaults()
    cfg.ApplyEnv()

    creds, ok := cfg.Accounts["default"]
    require.True(t, ok)
    assert.Equal(t, "alice", creds.Username)
    assert.Equal(t, "hunter2", creds.Password)
    assert.Equal(t, "alice@example.com", creds.Email)
    require.NotNil(t, creds.API)
    assert.True(t, creds.API.Complete())
    assert.Empty(t, cfg.SkippedAccounts)
}

func TestApplyEnvPartialAPICredentials(t *testing.T) {
    t.Setenv("TWITTER_USERNAME", "alice")
    t.Setenv("TWITTER_PASSWORD", "hunter2")
    t.Setenv("TWITTER_EMAIL", "")
    t.Setenv("TWITTER_API_KEY", "k")
    t.Setenv("TWITTER_API_SECRET_KEY", "")
    t.Setenv("TWITTER_ACCESS_TOKEN", "")
    t.Setenv("TWITTER_ACCESS_TOKEN_SECRET", "")

    cfg := Defaults()
    cfg.ApplyEnv()

    creds, ok := cfg.Accounts["default"]
    require.True(t, ok)
    require.NotNil(t, creds.API)
    assert.False(t, creds.API.Complete())
}

func TestApplyEnvSkipsAccountWithoutPrimaryPair(t *testing.T) {
    t.Setenv("TWITTER_USERNAME", "alice")
    t.Setenv("TWITTER_PASSWORD", "")
    t.Setenv("TWITTER_EMAIL", "")
    t.Setenv("TWITTER_API_KEY", "")
    t.Setenv("TWITTER_API_SECRET_KEY", "")
    t.Setenv("TWITTER_ACCESS_TOKEN", "")
    t.Setenv("TWITTER_ACCESS_TOKEN_SECRET", "")

    cfg := Defaults()
    cfg.ApplyEnv()

    _, ok := cfg.Accounts["default"]
    assert.False(t, ok)
    assert.Contains(t, cfg.SkippedAccounts, "default")
}

func TestApplyEnvExtraAccounts(t *testing.T) {
    t.Setenv("TWITTER_USERNAME", "")
    t.Setenv("TWITTER_PASSWORD", "")
    t.Setenv("TWITTER_ACCOUNTS", "botone, bot-two ,missing")
    t.Setenv("TWITTER_BOTONE_USERNAME", "bot1")
    t.Setenv("TWITTER_BOTONE_PASSWORD", "pw1")
    t.Setenv("TWITTER_BOT_TWO_USERNAME", "bot2")
    t.Setenv("TWITTER_BOT_TWO_PASSWORD", "pw2")
    t.Setenv("TWITTER_BOT_TWO_EMAIL", "bot2@example.com")

    cfg := Defaults()
    cfg.ApplyEnv()

    require.Contains(t, cfg.Accounts, "botone")
    assert.Equal(t, "bot1", cfg.Accounts["botone"].Username)

    require.Contains(t, cfg.Accounts, "bot-two")
    assert.Equal(t, "bot2", cfg.Accounts["bot-two"].Username)
    assert.Equal(t, "bot2@example.com", cfg.Accounts["bot-two"].Email)

    assert.NotContains(t, cfg.Accounts, "missing")
    assert.Contains(t, cfg.SkippedAccounts, "missing")
}

func TestEnvKey(t *testing.T) {
    tests := []struct {
        id   string
        want string
    }{
        {"default", "DEFAULT"},
        {"bot-two", "BOT_TWO"},
        {"news.feed", "NEWS_FEED"},
        {"Bot42", "BOT42"},
    }
    for _, tt := range tests {
        assert.Equal(t, tt.want, envKey(tt.id))
    }
}

func TestParseFlagsOverrideEnv(t *testing.T) {
    t.Setenv("PORT", "9999")

    cfg, err := Parse([]string{"-port", "8080", "-cookies-dir", "/tmp/cookies"})
    require.NoError(t, err)
    assert.Equal(t, 8080, cfg.Port)
    assert.Equal(t, "/tmp/cookies", cfg.CookiesDir)
}

func TestParseEnvWithoutFlags(t *testing.T) {
    t.Setenv("PORT", "9999")

    cfg, err := Parse([]string{})
    require.NoError(t, err)
    assert.Equal(t, 9999, cfg.Port)
}

func TestParseRejectsUnknownFlag(t *testing.T) {
    _, err := Parse([]string{"-definitely-not-a-flag"})
    require.Error(t, err)
}
