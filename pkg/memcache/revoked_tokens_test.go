package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevokeAndCheck(t *testing.T) {
	store := NewRevokedTokens()

	assert.False(t, store.IsRevoked("token-a"))

	store.Revoke("token-a", time.Hour)
	assert.True(t, store.IsRevoked("token-a"))
	assert.False(t, store.IsRevoked("token-b"))
}

func TestRevokeExpiredTokenIsNoOp(t *testing.T) {
	store := NewRevokedTokens()

	store.Revoke("token-a", 0)
	store.Revoke("token-b", -time.Minute)

	assert.False(t, store.IsRevoked("token-a"))
	assert.False(t, store.IsRevoked("token-b"))
}

func TestRevocationExpires(t *testing.T) {
	store := NewRevokedTokens()

	store.Revoke("token-a", 10*time.Millisecond)
	assert.True(t, store.IsRevoked("token-a"))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, store.IsRevoked("token-a"))
}
