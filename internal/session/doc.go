// Package session persists the client's local state: the session cookie,
// the last-fetched user profile, and small app settings. Each region is a
// single key in a durable key/value backend (file or Redis).
//
// Persistence failures are deliberately swallowed and logged, never
// returned: losing a cached preference is non-fatal, and losing the
// cookie or user cache degrades to "logged out" on the next read.
package session
