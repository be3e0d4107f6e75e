package livefeed

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChangeOp string

const (
	// OpSnapshot replaces the whole list (sent once when the view starts).
	OpSnapshot ChangeOp = "snapshot"
	// OpPrepend places a newly inserted item at the front of the list.
	OpPrepend ChangeOp = "prepend"
	// OpRemove drops the item with the given id.
	OpRemove ChangeOp = "remove"
	// OpPending marks the item with the given id as having a delete in flight.
	OpPending ChangeOp = "pending"
	// OpSettled clears the pending mark without removing the item (the delete
	// request failed; the list is unchanged).
	OpSettled ChangeOp = "settled"
)

// Change is one patch against the rendered list.
type Change struct {
	Op    ChangeOp  `json:"op"`
	Items []Item    `json:"items,omitempty"`
	Item  *Item     `json:"item,omitempty"`
	ID    uuid.UUID `json:"id,omitempty"`
}

type deleteResult struct {
	id  uuid.UUID
	err error
}

// ListView keeps one page session's ordered feedback list consistent across
// the initial snapshot, live insert/delete notifications, and locally
// requested deletions. All state is owned by the Run goroutine; external
// callers only ever touch the commands channel, so no locking is needed.
//
// Both removal paths (optimistic local delete and a delete notification from
// the feed) converge on the same idempotent removeItem primitive, which makes
// their relative arrival order irrelevant.
type ListView struct {
	source  Source
	deleter Deleter
	notify  func(Change)
	logger  *zap.Logger

	items           []Item
	pendingDeleteID uuid.UUID

	commands chan uuid.UUID
	results  chan deleteResult
	done     chan struct{}
}

// NewListView takes ownership of snapshot as the view's starting state. The
// notify sink receives every patch, starting with a snapshot once Run begins.
func NewListView(snapshot []Item, source Source, deleter Deleter, notify func(Change), logger *zap.Logger) *ListView {
	items := make([]Item, len(snapshot))
	copy(items, snapshot)

	return &ListView{
		source:   source,
		deleter:  deleter,
		notify:   notify,
		logger:   logger,
		items:    items,
		commands: make(chan uuid.UUID, 16),
		results:  make(chan deleteResult, 1),
		done:     make(chan struct{}),
	}
}

// Run subscribes to the change feed and processes events until ctx is
// cancelled or the source closes the subscription. The subscription is
// released on every exit path; after Run returns no further patches are
// emitted.
func (v *ListView) Run(ctx context.Context) {
	sub := v.source.Subscribe(EventInsert, EventDelete)
	defer sub.Release()
	defer close(v.done)

	v.notify(Change{Op: OpSnapshot, Items: append([]Item(nil), v.items...)})

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			v.apply(ev)
		case id := <-v.commands:
			v.startDelete(ctx, id)
		case res := <-v.results:
			v.finishDelete(res)
		}
	}
}

// Done is closed once Run has returned and the subscription is released.
func (v *ListView) Done() <-chan struct{} {
	return v.done
}

// RequestDelete asks the view to delete the item with the given id. The
// request is dropped when the view is shutting down or saturated; the UI
// affordance is disabled while a delete is pending, so a dropped request only
// ever mirrors a click that should not have been possible.
func (v *ListView) RequestDelete(id uuid.UUID) {
	select {
	case v.commands <- id:
	case <-v.done:
	default:
		v.logger.Warn("delete request dropped", zap.String("id", id.String()))
	}
}

func (v *ListView) apply(ev Event) {
	switch ev.Kind {
	case EventInsert:
		if v.contains(ev.Item.ID) {
			return
		}
		v.items = append([]Item{ev.Item}, v.items...)
		item := ev.Item
		v.notify(Change{Op: OpPrepend, Item: &item})
	case EventDelete:
		v.removeItem(ev.ID)
	}
}

func (v *ListView) startDelete(ctx context.Context, id uuid.UUID) {
	if v.pendingDeleteID != uuid.Nil {
		v.logger.Debug("delete already pending, ignoring request",
			zap.String("pending", v.pendingDeleteID.String()),
			zap.String("requested", id.String()))
		return
	}
	if !v.contains(id) {
		return
	}

	v.pendingDeleteID = id
	v.notify(Change{Op: OpPending, ID: id})

	// The backend call must not stall event processing; its outcome re-enters
	// the loop through the results channel.
	go func() {
		err := v.deleter.Delete(ctx, id)
		select {
		case v.results <- deleteResult{id: id, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (v *ListView) finishDelete(res deleteResult) {
	v.pendingDeleteID = uuid.Nil

	if res.err != nil {
		// The item was never removed, so there is nothing to restore. The
		// failure is operator diagnostics only.
		v.logger.Error("failed to delete feedback",
			zap.String("id", res.id.String()),
			zap.Error(res.err))
		v.notify(Change{Op: OpSettled, ID: res.id})
		return
	}

	// Optimistic removal. The delete notification for the same id arrives
	// later through the subscription and lands as a no-op.
	v.removeItem(res.id)
}

func (v *ListView) removeItem(id uuid.UUID) {
	for i, item := range v.items {
		if item.ID == id {
			v.items = append(v.items[:i], v.items[i+1:]...)
			v.notify(Change{Op: OpRemove, ID: id})
			return
		}
	}
}

func (v *ListView) contains(id uuid.UUID) bool {
	for _, item := range v.items {
		if item.ID == id {
			return true
		}
	}
	return false
}
