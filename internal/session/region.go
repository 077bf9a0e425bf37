package session

import (
	"context"
	"encoding/json"

	"github.com/ignite/emspanel/internal/pkg/logger"
)

// schemaVersion guards persisted payloads across releases. A stored
// record with a different version is treated as absent, so a shape
// change in the cached user DTO never breaks cold start.
const schemaVersion = 1

// record is the versioned wrapper written to the backend.
type record struct {
	Version int             `json:"version"`
	Value   json.RawMessage `json:"value"`
}

// Region is a typed view over one backend key with an explicit
// encoder/decoder pair. All failures are logged and swallowed: Save is
// best-effort and Load reports absence instead of an error.
type Region[T any] struct {
	backend Backend
	key     string
	encode  func(T) ([]byte, error)
	decode  func([]byte) (T, error)
}

// NewJSONRegion builds a region whose values round-trip through
// encoding/json.
func NewJSONRegion[T any](backend Backend, key string) *Region[T] {
	return &Region[T]{
		backend: backend,
		key:     key,
		encode:  func(v T) ([]byte, error) { return json.Marshal(v) },
		decode: func(data []byte) (T, error) {
			var v T
			err := json.Unmarshal(data, &v)
			return v, err
		},
	}
}

// Save persists the value. Failures are logged, never returned.
func (r *Region[T]) Save(ctx context.Context, v T) {
	raw, err := r.encode(v)
	if err != nil {
		logger.Warn("session: encode failed", "key", r.key, "error", err)
		return
	}
	data, err := json.Marshal(record{Version: schemaVersion, Value: raw})
	if err != nil {
		logger.Warn("session: encode failed", "key", r.key, "error", err)
		return
	}
	if err := r.backend.Set(ctx, r.key, data); err != nil {
		logger.Warn("session: write failed", "key", r.key, "error", err)
	}
}

// Load returns the stored value and whether one was usable. A missing
// key, a version mismatch, or a decode failure all read as absent.
func (r *Region[T]) Load(ctx context.Context) (T, bool) {
	var zero T
	data, ok, err := r.backend.Get(ctx, r.key)
	if err != nil {
		logger.Warn("session: read failed", "key", r.key, "error", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		logger.Warn("session: corrupt record", "key", r.key, "error", err)
		return zero, false
	}
	if rec.Version != schemaVersion {
		logger.Info("session: discarding record with old schema", "key", r.key)
		return zero, false
	}
	v, err := r.decode(rec.Value)
	if err != nil {
		logger.Warn("session: decode failed", "key", r.key, "error", err)
		return zero, false
	}
	return v, true
}

// Remove deletes the stored value. Failures are logged, never returned.
func (r *Region[T]) Remove(ctx context.Context) {
	if err := r.backend.Delete(ctx, r.key); err != nil {
		logger.Warn("session: delete failed", "key", r.key, "error", err)
	}
}

// Exists reports whether a usable value is stored. It applies the same
// version and decode checks as Load, so a stale or corrupt record reads
// as absent here too and both views always agree. Backend failures read
// as absent, which degrades to "logged out" rather than erroring.
func (r *Region[T]) Exists(ctx context.Context) bool {
	_, ok := r.Load(ctx)
	return ok
}
