// Package auth implements the authentication use cases: login, logout,
// registration, password recovery, and activation-email resending.
//
// Use cases validate their input locally before any network call; a
// malformed email never leaves the device. Remote failures produced by
// the network client pass through unmodified. The package owns the
// session mutations tied to authentication: the current-user cell is
// set on login and the cookie and cached profile are cleared on logout.
package auth
