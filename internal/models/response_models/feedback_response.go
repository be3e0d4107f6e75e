package response_models

import (
	"time"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/db_models"
)

type FeedbackResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    string    `json:"author_id"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
}

func FeedbackFromModel(f db_models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:          f.ID.String(),
		Title:       f.Title,
		Description: f.Description,
		AuthorID:    f.AuthorID.String(),
		AuthorEmail: f.AuthorEmail,
		CreatedAt:   f.CreatedAt,
	}
}

func FeedbackListFromModels(items []db_models.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(items))
	for _, f := range items {
		out = append(out, FeedbackFromModel(f))
	}
	return out
}
