package session

import "context"

// Backend is the minimal durable key/value capability set every region
// is built on. Implementations must be safe for concurrent use.
type Backend interface {
	Set(ctx context.Context, key string, value []byte) error
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Logical keys, one per region.
const (
	keyCookie   = "session.cookie"
	keyUser     = "session.user"
	keySettings = "app.settings"
)
