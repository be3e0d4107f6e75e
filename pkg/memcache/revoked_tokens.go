package memcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// RevokedTokenStore remembers logged-out JWTs until they would have expired
// anyway, so a signed token cannot outlive its session.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

type RevokedTokens struct {
	cache *gocache.Cache
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	if ttl <= 0 {
		// Already expired; nothing to remember.
		return
	}
	s.cache.Set(token, struct{}{}, ttl)
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	_, found := s.cache.Get(token)
	return found
}
