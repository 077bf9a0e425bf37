package emsapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp_AcceptedLayouts(t *testing.T) {
	want := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, want, parseTimestamp("2026-03-01T10:30:00Z"))
	assert.Equal(t, want, parseTimestamp("2026-03-01T10:30:00"))
	assert.Equal(t, want, parseTimestamp("2026-03-01 10:30:00"))
}

func TestParseTimestamp_GarbageIsZero(t *testing.T) {
	assert.True(t, parseTimestamp("").IsZero())
	assert.True(t, parseTimestamp("not a time").IsZero())
}

func TestParseOptionalTimestamp(t *testing.T) {
	assert.Nil(t, parseOptionalTimestamp(""))
	assert.Nil(t, parseOptionalTimestamp("garbage"))

	got := parseOptionalTimestamp("2026-03-01T10:30:00Z")
	assert.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), *got)
}

func TestDecodePayload_Lenient(t *testing.T) {
	_, ok := decodePayload[UserDTO](nil)
	assert.False(t, ok)

	_, ok = decodePayload[UserDTO]([]byte("null"))
	assert.False(t, ok)

	_, ok = decodePayload[UserDTO]([]byte(`"a string"`))
	assert.False(t, ok)

	dto, ok := decodePayload[UserDTO]([]byte(`{"uuid":"u-1"}`))
	assert.True(t, ok)
	assert.Equal(t, "u-1", dto.UUID)
}
