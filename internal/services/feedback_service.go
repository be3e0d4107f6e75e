package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/livefeed"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/db_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/request_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/repositories"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/utils"
)

// Publisher is the slice of the hub the service needs: one notification per
// committed mutation, fanned out to every connected session.
type Publisher interface {
	Publish(ev livefeed.Event)
}

type FeedbackServiceInterface interface {
	CreateFeedback(ctx context.Context, authorID uuid.UUID, authorEmail string, request request_models.CreateFeedbackRequest) (*db_models.Feedback, error)
	ListFeedback(ctx context.Context) ([]db_models.Feedback, error)
	DeleteFeedback(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	publisher    Publisher
	logger       *zap.Logger
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, publisher Publisher, logger *zap.Logger) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, authorID uuid.UUID, authorEmail string, request request_models.CreateFeedbackRequest) (*db_models.Feedback, error) {
	feedback := &db_models.Feedback{
		Title:       request.Title,
		Description: request.Description,
		AuthorID:    authorID,
		AuthorEmail: authorEmail,
	}

	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		s.logger.Error("failed to create feedback", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.publisher.Publish(livefeed.InsertEvent(feedback.ToItem()))
	return feedback, nil
}

func (s *FeedbackService) ListFeedback(ctx context.Context) ([]db_models.Feedback, error) {
	feedbacks, err := s.feedbackRepo.ListFeedback(ctx)
	if err != nil {
		s.logger.Error("failed to list feedback", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return feedbacks, nil
}

// DeleteFeedback removes the item when the requester is its author. The
// ownership check here is authoritative; the delete button in the UI is only
// a convenience.
func (s *FeedbackService) DeleteFeedback(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load feedback", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if feedback == nil {
		return utils.ErrFeedbackNotFound
	}
	if feedback.AuthorID != requesterID {
		return utils.ErrNotFeedbackOwner
	}

	if err := s.feedbackRepo.DeleteFeedback(ctx, id); err != nil {
		s.logger.Error("failed to delete feedback", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}

	s.publisher.Publish(livefeed.DeleteEvent(id))
	return nil
}
