package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/livefeed"
)

type Feedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorEmail string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// ToItem converts the stored row into its live-feed representation.
func (f *Feedback) ToItem() livefeed.Item {
	return livefeed.Item{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		AuthorID:    f.AuthorID,
		AuthorEmail: f.AuthorEmail,
		CreatedAt:   f.CreatedAt,
	}
}
