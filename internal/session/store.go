// Package session restores and persists authenticated twitter sessions.
// Cookies live in one JSON file per account so a restart never has to
// repeat the login flow.
package session

import (
    "encoding/json"
    "errors"
    "fmt"
    "io/fs"
    "os"
    "path/filepath"

    "github.com/dleerdefi/agent-twitter-client/internal/twitter"
)

// Store reads and writes per-account cookie files under a single directory.
type Store struct {
    dir string
}

// NewStore returns a Store rooted at dir. The directory is created on the
// first Save.
func NewStore(dir string) *Store {
    return &Store{dir: dir}
}

// Path returns the cookie file path for accountID.
func (s *Store) Path(accountID string) string {
    return filepath.Join(s.dir, "cookies_"+accountID+".json")
}

// Load returns the cookies persisted for accountID. A missing file is not
// an error and yields an empty slice; unreadable or corrupt files are
// reported so the caller can decide to log in fresh.
func (s *Store) Load(accountID string) ([]twitter.Cookie, error) {
    data, err := os.ReadFile(s.Path(accountID))
    if errors.Is(err, fs.ErrNotExist) {
        return nil, nil
    }
    if err != nil {
        return nil, fmt.Errorf("read cookie file: %w", err)
    }
    var cookies []twitter.Cookie
    if err := json.Unmarshal(data, &cookies); err != nil {
        return nil, fmt.Errorf("parse cookie file %s: %w", s.Path(accountID), err)
    }
    return cookies, nil
}

// Save replaces the cookie file for accountID. The write goes through a
// temp file and rename so a crash cannot leave a truncated session behind.
func (s *Store) Save(accountID string, cookies []twitter.Cookie) error {
    if err := os.MkdirAll(s.dir, 0o755); err != nil {
        return fmt.Errorf("create cookie directory: %w", err)
    }
    data, err := json.MarshalIndent(cookies, "", "  ")
    if err != nil {
        return fmt.Errorf("marshal cookies: %w", err)
    }
    path := s.Path(accountID)
    tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
    if err != nil {
        return fmt.Errorf("create temp cookie file: %w", err)
    }
    if _, err := tmp.Write(data); err != nil {
        tmp.Close()
        os.Remove(tmp.Name())
        return fmt.Errorf("write cookie file: %w", err)
    }
    if err := tmp.Close(); err != nil {
        os.Remove(tmp.Name())
        return fmt.Errorf("close cookie file: %w", err)
    }
    if err := os.Rename(tmp.Name(), path); err != nil {
        os.Remove(tmp.Name())
        return fmt.Errorf("replace cookie file: %w", err)
    }
    return nil
}
