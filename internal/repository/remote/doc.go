// Package remote implements the service repository interfaces over the
// panel API client. Each method is a pure composition point: build the
// endpoint from typed parameters, execute it, map the DTO to the domain
// type. Repositories hold no state and pass remote errors through
// unmodified.
package remote
