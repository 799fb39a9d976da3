package twitter

import (
    "net/http"
)

// SameSite values as stored in session files.
const (
    sameSiteStrict = "Strict"
    sameSiteLax    = "Lax"
    sameSiteNone   = "None"
)

// CookiesFromHTTP converts the cookies held by an upstream client into
// persistable records. A cookie without an explicit Domain attribute is
// host-only; zero expiry times are omitted from the record.
func CookiesFromHTTP(in []*http.Cookie) []Cookie {
    out := make([]Cookie, 0, len(in))
    for _, c := range in {
        record := Cookie{
            Key:      c.Name,
            Value:    c.Value,
            Domain:   c.Domain,
            Path:     c.Path,
            Secure:   c.Secure,
            HTTPOnly: c.HttpOnly,
            SameSite: sameSiteString(c.SameSite),
            HostOnly: c.Domain == "",
        }
        if !c.Expires.IsZero() {
            expires := c.Expires
            record.Expires = &expires
        }
        out = append(out, record)
    }
    return out
}

// CookiesToHTTP rebuilds http cookies from persisted records for
// installation into a fresh client handle.
func CookiesToHTTP(in []Cookie) []*http.Cookie {
    out := make([]*http.Cookie, 0, len(in))
    for _, record := range in {
        c := &http.Cookie{
            Name:     record.Key,
            Value:    record.Value,
            Domain:   record.Domain,
            Path:     record.Path,
            Secure:   record.Secure,
            HttpOnly: record.HTTPOnly,
            SameSite: sameSiteValue(record.SameSite),
        }
        if record.Expires != nil {
            c.Expires = *record.Expires
        }
        out = append(out, c)
    }
    return out
}

func sameSiteString(s http.SameSite) string {
    switch s {
    case http.SameSiteStrictMode:
        return sameSiteStrict
    case http.SameSiteLaxMode:
        return sameSiteLax
    case http.SameSiteNoneMode:
        return sameSiteNone
    default:
        return ""
    }
}

func sameSiteValue(s string) http.SameSite {
    switch s {
    case sameSiteStrict:
        return http.SameSiteStrictMode
    case sameSiteLax:
        return http.SameSiteLaxMode
    case sameSiteNone:
        return http.SameSiteNoneMode
    default:
        return http.SameSiteDefaultMode
    }
}
