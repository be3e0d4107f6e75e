package livefeed_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/livefeed"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/services"
)

var Module = fx.Provide(provideHub, providePublisher)

func provideHub(logger *zap.Logger) *livefeed.Hub {
	return livefeed.NewHub(logger)
}

func providePublisher(hub *livefeed.Hub) services.Publisher {
	return hub
}
