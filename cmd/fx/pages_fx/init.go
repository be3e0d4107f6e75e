package pages_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/api/controllers"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/services"
)

var Module = fx.Provide(providePageController)

func providePageController(feedbackService services.FeedbackServiceInterface, logger *zap.Logger) *controllers.PageController {
	return controllers.NewPageController(feedbackService, logger)
}
