package livefeed

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventInsert EventKind = "insert"
	EventDelete EventKind = "delete"
)

// Item is the feedback entry as seen by connected views. Decoupled from the
// GORM model so the hub and views carry no persistence concerns.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    uuid.UUID `json:"author_id"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
}

// Event is one change-feed notification. Insert events carry the full item,
// delete events only the target id.
type Event struct {
	Kind EventKind
	Item Item
	ID   uuid.UUID
}

func InsertEvent(item Item) Event {
	return Event{Kind: EventInsert, Item: item, ID: item.ID}
}

func DeleteEvent(id uuid.UUID) Event {
	return Event{Kind: EventDelete, ID: id}
}

// Source hands out live subscriptions to the feedback change feed.
type Source interface {
	Subscribe(kinds ...EventKind) Subscription
}

// Subscription delivers matching events until released. Release is idempotent
// and must be called on every exit path of the consumer.
type Subscription interface {
	Events() <-chan Event
	Release()
}

// Deleter issues the backend deletion for a locally requested delete.
type Deleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}
