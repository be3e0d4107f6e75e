package feedback_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/api/controllers"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/livefeed"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/repositories"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController, provideLiveFeedController,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, publisher services.Publisher, logger *zap.Logger) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, publisher, logger)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}

func provideLiveFeedController(feedbackService services.FeedbackServiceInterface, hub *livefeed.Hub, logger *zap.Logger) *controllers.LiveFeedController {
	return controllers.NewLiveFeedController(feedbackService, hub, logger)
}
