package config

import (
    "bufio"
    "flag"
    "fmt"
    "os"
    "strconv"
    "strings"

    "github.com/dleerdefi/agent-twitter-client/internal/accounts"
)

// Config aggregates runtime options shared by the CLI commands.
type Config struct {
    Host           string
    Port           int
    LogLevel       string
    CookiesDir     string
    DefaultAccount string

    // Accounts maps account id to credentials. SkippedAccounts lists ids
    // that appeared in the environment without the username/password pair
    // so the serve command can warn about them at startup.
    Accounts        map[string]accounts.Credentials
    SkippedAccounts []string
}

// Defaults returns baseline configuration.
func Defaults() Config {
    return Config{
        Host:           "0.0.0.0",
        Port:           3000,
        LogLevel:       "info",
        CookiesDir:     ".",
        DefaultAccount: "default",
        Accounts:       map[string]accounts.Credentials{},
    }
}

// ApplyEnv overlays environment variables onto the config before flag parsing.
func (c *Config) ApplyEnv() {
    if v := os.Getenv("HOST"); v != "" {
        c.Host = v
    }
    if v := os.Getenv("PORT"); v != "" {
        if p, err := strconv.Atoi(v); err == nil {
            c.Port = p
        }
    }
    if v := os.Getenv("LOG_LEVEL"); v != "" {
        c.LogLevel = v
    }
    if v := os.Getenv("COOKIES_DIR"); v != "" {
        c.CookiesDir = v
    }
    c.applyAccountEnv()
}

// applyAccountEnv reads the default account from TWITTER_* and any extra
// accounts named in TWITTER_ACCOUNTS from TWITTER_<ID>_* variables.
// Accounts missing the username/password pair are skipped, not fatal.
func (c *Config) applyAccountEnv() {
    if creds, found := accountFromEnv("TWITTER"); found {
        if creds.HasPrimary() {
            c.Accounts[c.DefaultAccount] = creds
        } else {
            c.SkippedAccounts = append(c.SkippedAccounts, c.DefaultAccount)
        }
    }

    names := os.Getenv("TWITTER_ACCOUNTS")
    if names == "" {
        return
    }
    for _, raw := range strings.Split(names, ",") {
        id := strings.TrimSpace(raw)
        if id == "" {
            continue
        }
        creds, found := accountFromEnv("TWITTER_" + envKey(id))
        if !found || !creds.HasPrimary() {
            c.SkippedAccounts = append(c.SkippedAccounts, id)
            continue
        }
        c.Accounts[id] = creds
    }
}

// accountFromEnv collects one account's credentials from <prefix>_USERNAME
// and friends. found reports whether any of the variables were set at all.
func accountFromEnv(prefix string) (accounts.Credentials, bool) {
    get := func(suffix string) string { return os.Getenv(prefix + "_" + suffix) }
    creds := accounts.Credentials{
        Username: get("USERNAME"),
        Password: get("PASSWORD"),
        Email:    get("EMAIL"),
    }
    api := accounts.APICredentials{
        Key:               get("API_KEY"),
        KeySecret:         get("API_SECRET_KEY"),
        AccessToken:       get("ACCESS_TOKEN"),
        AccessTokenSecret: get("ACCESS_TOKEN_SECRET"),
    }
    found := creds.Username != "" || creds.Password != "" || creds.Email != "" ||
        api != (accounts.APICredentials{})
    if api != (accounts.APICredentials{}) {
        creds.API = &api
    }
    return creds, found
}

// envKey uppercases an account id for use inside an environment variable
// name, mapping characters env names cannot carry to underscores.
func envKey(id string) string {
    up := strings.ToUpper(id)
    return strings.Map(func(r rune) rune {
        if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
            return r
        }
        return '_'
    }, up)
}

// Parse builds config from env + flags. Flags override env, which override defaults.
func Parse(args []string) (Config, error) {
    cfg := Defaults()

    // Auto-load .env if present
    if loaded, err := loadDotEnv(".env"); err != nil {
        return cfg, fmt.Errorf("load .env: %w", err)
    } else if !loaded {
        fmt.Fprintln(os.Stderr, "[agentapi] .env not found; using environment variables and flags")
    }

    cfg.ApplyEnv()

    fs := flag.NewFlagSet("agentapi", flag.ContinueOnError)

    fs.StringVar(&cfg.Host, "host", cfg.Host, "listen host")
    fs.IntVar(&cfg.Port, "port", cfg.Port, "listen port")
    fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug,info,warn,error)")
    fs.StringVar(&cfg.CookiesDir, "cookies-dir", cfg.CookiesDir, "directory for persisted session cookie files")
    fs.StringVar(&cfg.DefaultAccount, "default-account", cfg.DefaultAccount, "account id used when a request omits accountId")

    if err := fs.Parse(args); err != nil {
        // propagate flag errors to caller for CLI to display
        return cfg, fmt.Errorf("parse flags: %w", err)
    }

    return cfg, nil
}

// loadDotEnv loads KEY=VALUE pairs from a .env file into process env.
// Returns true if file was found and loaded, false if not present.
func loadDotEnv(path string) (bool, error) {
    f, err := os.Open(path)
    if err != nil {
        if os.IsNotExist(err) {
            return false, nil
        }
        return false, err
    }
    defer f.Close()

    scanner := bufio.NewScanner(f)
    for scanner.Scan() {
        line := strings.TrimSpace(scanner.Text())
        if line == "" || strings.HasPrefix(line, "#") {
            continue
        }
        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            continue
        }
        key := strings.TrimSpace(parts[0])
        val := strings.TrimSpace(parts[1])
        val = strings.Trim(val, `"'`)
        if key != "" {
            os.Setenv(key, val)
        }
    }
    if err := scanner.Err(); err != nil {
        return true, err
    }
    return true, nil
}
