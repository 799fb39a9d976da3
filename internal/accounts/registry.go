package accounts

import (
    "errors"
    "fmt"
)

// ErrNotFound is returned by Lookup for account identifiers that were never
// configured.
var ErrNotFound = errors.New("unknown account")

// APICredentials is the four-part API credential set some upstream
// operations require. A partially filled set is treated as absent.
type APICredentials struct {
    Key               string
    KeySecret         string
    AccessToken       string
    AccessTokenSecret string
}

// Complete reports whether all four fields are present.
func (a *APICredentials) Complete() bool {
    return a != nil && a.Key != "" && a.KeySecret != "" && a.AccessToken != "" && a.AccessTokenSecret != ""
}

// Credentials holds everything needed to authenticate one account: the
// primary username/password pair, an optional email for login challenges,
// and the optional API credential set.
type Credentials struct {
    Username string
    Password string
    Email    string
    API      *APICredentials
}

// HasPrimary reports whether the username/password pair is present.
// Without it authentication cannot proceed at all.
func (c Credentials) HasPrimary() bool {
    return c.Username != "" && c.Password != ""
}

// Registry maps account identifiers to their credentials. It is populated
// once at startup and read-only afterwards.
type Registry struct {
    accounts map[string]Credentials
}

// NewRegistry builds a registry from the given map. The map is copied, so
// the caller keeps no handle into the registry's state.
func NewRegistry(accounts map[string]Credentials) *Registry {
    m := make(map[string]Credentials, len(accounts))
    for id, creds := range accounts {
        m[id] = creds
    }
    return &Registry{accounts: m}
}

// Lookup resolves an account identifier to its credentials. Unknown
// identifiers report an error wrapping ErrNotFound.
func (r *Registry) Lookup(accountID string) (Credentials, error) {
    creds, ok := r.accounts[accountID]
    if !ok {
        return Credentials{}, fmt.Errorf("%w: %q", ErrNotFound, accountID)
    }
    return creds, nil
}

// IDs returns the configured account identifiers.
func (r *Registry) IDs() []string {
    ids := make([]string, 0, len(r.accounts))
    for id := range r.accounts {
        ids = append(ids, id)
    }
    return ids
}
