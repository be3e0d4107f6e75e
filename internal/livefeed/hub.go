package livefeed

import (
	"sync"

	"go.uber.org/zap"
)

const subscriptionBuffer = 64

// Hub is the in-process change feed for the feedback collection. Every
// mutation is published once and delivered to all live subscriptions whose
// kind filter matches, including the subscription of the session that caused
// the mutation.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*hubSubscription]struct{}
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subs:   make(map[*hubSubscription]struct{}),
		logger: logger,
	}
}

// Subscribe registers a new subscription filtered to the given kinds. An empty
// filter matches every event.
func (h *Hub) Subscribe(kinds ...EventKind) Subscription {
	sub := &hubSubscription{
		hub:   h,
		kinds: make(map[EventKind]struct{}, len(kinds)),
		ch:    make(chan Event, subscriptionBuffer),
	}
	for _, k := range kinds {
		sub.kinds[k] = struct{}{}
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Publish fans the event out to all matching subscriptions. Delivery is
// non-blocking; a subscriber that has fallen subscriptionBuffer events behind
// loses the event and the drop is logged.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if !sub.matches(ev.Kind) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			h.logger.Warn("live feed subscriber too slow, dropping event",
				zap.String("kind", string(ev.Kind)),
				zap.String("id", ev.ID.String()))
		}
	}
}

// SubscriberCount reports the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

type hubSubscription struct {
	hub     *Hub
	kinds   map[EventKind]struct{}
	ch      chan Event
	release sync.Once
}

func (s *hubSubscription) matches(kind EventKind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	_, ok := s.kinds[kind]
	return ok
}

func (s *hubSubscription) Events() <-chan Event {
	return s.ch
}

// Release unregisters the subscription and closes its channel. Publish holds
// the hub read lock while sending, so closing under the write lock cannot race
// a send.
func (s *hubSubscription) Release() {
	s.release.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		close(s.ch)
		s.hub.mu.Unlock()
	})
}
