package domain

import "time"

// TokenState enumerates the lifecycle states of an SMTP API token.
type TokenState string

const (
	TokenStateActive    TokenState = "active"
	TokenStateInactive  TokenState = "inactive"
	TokenStateExpired   TokenState = "expired"
	TokenStateSuspended TokenState = "suspended"
)

// TokenStateFromString normalizes a wire value to a known state.
// Unrecognized values fall back to inactive rather than failing.
func TokenStateFromString(s string) TokenState {
	switch TokenState(s) {
	case TokenStateActive, TokenStateInactive, TokenStateExpired, TokenStateSuspended:
		return TokenState(s)
	default:
		return TokenStateInactive
	}
}

// Token is an SMTP API credential record. The list view is always a
// fresh fetch; tokens are never patched locally.
type Token struct {
	Name      string
	Value     string // the secret
	State     TokenState
	CreatedAt time.Time
	ExpiredAt *time.Time
	UpdatedAt time.Time
}

// IsUsable reports whether the token can currently authenticate sends.
func (t Token) IsUsable() bool {
	return t.State == TokenStateActive
}
