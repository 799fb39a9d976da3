package accounts

import (
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestLookupKnownAccount(t *testing.T) {
    reg := NewRegistry(map[string]Credentials{
        "default": {Username: "alice", Password: "hunter2", Email: "alice@example.com"},
    })

    creds, err := reg.Lookup("default")
    require.NoError(t, err)
    assert.Equal(t, "alice", creds.Username)
    assert.Equal(t, "hunter2", creds.Password)
    assert.Equal(t, "alice@example.com", creds.Email)
}

func TestLookupUnknownAccount(t *testing.T) {
    reg := NewRegistry(map[string]Credentials{})

    _, err := reg.Lookup("ghost")
    require.Error(t, err)
    assert.True(t, errors.Is(err, ErrNotFound))
    assert.Contains(t, err.Error(), "ghost")
}

func TestRegistryCopiesInput(t *testing.T) {
    src := map[string]Credentials{"bot": {Username: "bot", Password: "pw"}}
    reg := NewRegistry(src)

    src["bot"] = Credentials{Username: "mutated", Password: "pw"}
    delete(src, "bot")

    creds, err := reg.Lookup("bot")
    require.NoError(t, err)
    assert.Equal(t, "bot", creds.Username)
}

func TestIDs(t *testing.T) {
    reg := NewRegistry(map[string]Credentials{
        "default": {Username: "a", Password: "b"},
        "backup":  {Username: "c", Password: "d"},
    })
    assert.ElementsMatch(t, []string{"default", "backup"}, reg.IDs())
}

func TestHasPrimary(t *testing.T) {
    tests := []struct {
        name  string
        creds Credentials
        want  bool
    }{
        {"both", Credentials{Username: "u", Password: "p"}, true},
        {"missing password", Credentials{Username: "u"}, false},
        {"missing username", Credentials{Password: "p"}, false},
        {"empty", Credentials{}, false},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            assert.Equal(t, tt.want, tt.creds.HasPrimary())
        })
    }
}

func TestAPICredentialsComplete(t *testing.T) {
    full := &APICredentials{Key: "k", KeySecret: "ks", AccessToken: "t", AccessTokenSecret: "ts"}
    assert.True(t, full.Complete())

    partial := &APICredentials{Key: "k", AccessToken: "t"}
    assert.False(t, partial.Complete())

    var absent *APICredentials
    assert.False(t, absent.Complete())
}
