package livefeed

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func receiveEvent(t *testing.T, sub Subscription) Event {
	t.Helper()
	select {
	case ev := <-sub.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func expectNoEvent(t *testing.T, sub Subscription) {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		if ok {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	first := hub.Subscribe(EventInsert, EventDelete)
	second := hub.Subscribe(EventInsert, EventDelete)

	item := makeItem("shared")
	hub.Publish(InsertEvent(item))

	for _, sub := range []Subscription{first, second} {
		ev := receiveEvent(t, sub)
		assert.Equal(t, EventInsert, ev.Kind)
		assert.Equal(t, item.ID, ev.Item.ID)
	}
}

func TestHubFiltersByKind(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	insertsOnly := hub.Subscribe(EventInsert)

	hub.Publish(DeleteEvent(uuid.New()))
	expectNoEvent(t, insertsOnly)

	item := makeItem("wanted")
	hub.Publish(InsertEvent(item))
	ev := receiveEvent(t, insertsOnly)
	assert.Equal(t, item.ID, ev.Item.ID)
}

func TestHubEmptyFilterMatchesEverything(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	all := hub.Subscribe()

	hub.Publish(DeleteEvent(uuid.New()))
	assert.Equal(t, EventDelete, receiveEvent(t, all).Kind)
}

func TestHubReleaseStopsDelivery(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	sub := hub.Subscribe(EventInsert, EventDelete)
	other := hub.Subscribe(EventInsert, EventDelete)

	sub.Release()
	require.Equal(t, 1, hub.SubscriberCount())

	hub.Publish(InsertEvent(makeItem("after-release")))
	expectNoEvent(t, sub)
	receiveEvent(t, other)

	// Release is idempotent.
	sub.Release()
	assert.Equal(t, 1, hub.SubscriberCount())
}

func TestHubReleaseClosesChannel(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	sub := hub.Subscribe(EventInsert)

	sub.Release()

	_, ok := <-sub.Events()
	assert.False(t, ok)
}

func TestHubPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	slow := hub.Subscribe(EventInsert)

	// Saturate the subscription buffer, then keep publishing; Publish must
	// return rather than wait for the consumer.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriptionBuffer+10; i++ {
			hub.Publish(InsertEvent(makeItem("flood")))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	slow.Release()
}
