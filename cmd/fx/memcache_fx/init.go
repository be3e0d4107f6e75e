package memcache_fx

import (
	"go.uber.org/fx"

	mem "github.com/usamabinnadeem-10/realtime-feedback/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokens)

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}
