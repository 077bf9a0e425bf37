package session

import (
	"context"
	"strings"
)

// CookieStore holds the session credential: a single opaque name=value
// cookie pair. Its existence is the authentication signal.
type CookieStore struct {
	region *Region[string]
}

// NewCookieStore creates the cookie region over a backend.
func NewCookieStore(backend Backend) *CookieStore {
	return &CookieStore{region: NewJSONRegion[string](backend, keyCookie)}
}

// StripAttributes reduces a raw Set-Cookie header to its bare name=value
// pair, dropping Path, HttpOnly, and any other attributes after the
// first semicolon.
func StripAttributes(raw string) string {
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

// SaveCookie parses a raw Set-Cookie header value and stores only the
// bare name=value pair. Empty results are ignored.
func (s *CookieStore) SaveCookie(ctx context.Context, raw string) {
	pair := StripAttributes(raw)
	if pair == "" {
		return
	}
	s.region.Save(ctx, pair)
}

// Cookie returns the stored pair verbatim, or false when absent.
func (s *CookieStore) Cookie(ctx context.Context) (string, bool) {
	return s.region.Load(ctx)
}

// Clear removes the credential, signing the client out.
func (s *CookieStore) Clear(ctx context.Context) {
	s.region.Remove(ctx)
}

// IsAuthenticated reports whether a credential is stored. No network
// call is involved.
func (s *CookieStore) IsAuthenticated(ctx context.Context) bool {
	return s.region.Exists(ctx)
}
