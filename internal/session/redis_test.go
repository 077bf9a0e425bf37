package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisBackend(t *testing.T) *RedisBackend {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backend := NewRedisBackendWithClient(client)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestRedisBackend_RoundTrip(t *testing.T) {
	backend := newRedisBackend(t)
	ctx := context.Background()

	_, ok, err := backend.Get(ctx, keyCookie)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.Set(ctx, keyCookie, []byte("payload")))

	data, ok, err := backend.Get(ctx, keyCookie)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), data)

	exists, err := backend.Exists(ctx, keyCookie)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, backend.Delete(ctx, keyCookie))
	exists, err = backend.Exists(ctx, keyCookie)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisBackend_DeleteMissingKeyIsNoError(t *testing.T) {
	backend := newRedisBackend(t)
	assert.NoError(t, backend.Delete(context.Background(), "session.absent"))
}

func TestRedisBackend_KeysArePrefixed(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backend := NewRedisBackendWithClient(client)
	defer backend.Close()
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, keyCookie, []byte("v")))
	assert.True(t, mr.Exists("emspanel:"+keyCookie))
}

func TestStoreOverRedisBackend(t *testing.T) {
	backend := newRedisBackend(t)
	store := New(backend)
	ctx := context.Background()

	store.Cookie.SaveCookie(ctx, "sid=redis-1; Path=/")
	assert.True(t, store.Cookie.IsAuthenticated(ctx))

	cookie, ok := store.Cookie.Cookie(ctx)
	require.True(t, ok)
	assert.Equal(t, "sid=redis-1", cookie)
}

func TestStoreOverRedisBackend_StaleSchemaReadsAsLoggedOut(t *testing.T) {
	backend := newRedisBackend(t)
	ctx := context.Background()

	stale, err := json.Marshal(record{Version: schemaVersion + 1, Value: []byte(`"sid=abc123"`)})
	require.NoError(t, err)
	require.NoError(t, backend.Set(ctx, keyCookie, stale))

	store := New(backend)
	_, ok := store.Cookie.Cookie(ctx)
	assert.False(t, ok)
	assert.False(t, store.Cookie.IsAuthenticated(ctx))
}
