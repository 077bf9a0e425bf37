// Package stubapi is an in-memory rendition of the panel API for local
// development and integration tests. It speaks the same envelope format
// and status codes as the real service, backs every route with seeded
// fixtures, and issues real session cookies, so the client stack can be
// exercised end to end without network access to a panel deployment.
package stubapi
