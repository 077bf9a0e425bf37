package session

import (
	"sync"

	"github.com/ignite/emspanel/internal/domain"
)

// CurrentUser is an observable cell holding the in-memory current user.
// It is created once at the composition root; there is at most one
// current user at a time. Subscribers are notified synchronously on
// every change, including the clear on logout.
type CurrentUser struct {
	mu    sync.RWMutex
	user  *domain.User
	subs  map[int]func(*domain.User)
	nextS int
}

// NewCurrentUser creates an empty cell.
func NewCurrentUser() *CurrentUser {
	return &CurrentUser{subs: make(map[int]func(*domain.User))}
}

// Get returns the current user, or nil when signed out.
func (c *CurrentUser) Get() *domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// Set replaces the current user wholesale and notifies subscribers.
func (c *CurrentUser) Set(u *domain.User) {
	c.mu.Lock()
	c.user = u
	listeners := make([]func(*domain.User), 0, len(c.subs))
	for _, fn := range c.subs {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(u)
	}
}

// Clear drops the current user and notifies subscribers with nil.
func (c *CurrentUser) Clear() {
	c.Set(nil)
}

// Subscribe registers a change listener and returns its cancel func.
func (c *CurrentUser) Subscribe(fn func(*domain.User)) (cancel func()) {
	c.mu.Lock()
	id := c.nextS
	c.nextS++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
