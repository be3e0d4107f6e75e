package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/livefeed"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// liveRequest is a frame sent by the browser over the live feed socket.
type liveRequest struct {
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

type LiveFeedController struct {
	feedbackService services.FeedbackServiceInterface
	hub             *livefeed.Hub
	logger          *zap.Logger
}

func NewLiveFeedController(feedbackService services.FeedbackServiceInterface, hub *livefeed.Hub, logger *zap.Logger) *LiveFeedController {
	return &LiveFeedController{
		feedbackService: feedbackService,
		hub:             hub,
		logger:          logger,
	}
}

// serviceDeleter binds the session identity to delete requests coming out of
// a view. Anonymous sessions carry uuid.Nil and every delete is rejected as
// not-owner by the service.
type serviceDeleter struct {
	svc         services.FeedbackServiceInterface
	requesterID uuid.UUID
}

func (d serviceDeleter) Delete(ctx context.Context, id uuid.UUID) error {
	return d.svc.DeleteFeedback(ctx, id, d.requesterID)
}

// HandleLiveFeed godoc
// @Summary Live feedback feed
// @Description Upgrade to a websocket streaming list patches for the feedback collection
// @Tags Feedback
// @Router /api/feedback/live [get]
func (l *LiveFeedController) HandleLiveFeed(c *gin.Context) {
	userID, _, _ := currentIdentity(c)

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		l.logger.Error("failed to upgrade the websocket", zap.Error(err))
		return
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	snapshot, err := l.feedbackService.ListFeedback(ctx)
	if err != nil {
		l.logger.Error("failed to load live feed snapshot", zap.Error(err))
		return
	}

	items := make([]livefeed.Item, 0, len(snapshot))
	for _, f := range snapshot {
		items = append(items, f.ToItem())
	}

	changes := make(chan livefeed.Change, 64)
	notify := func(ch livefeed.Change) {
		select {
		case changes <- ch:
		default:
			l.logger.Warn("live feed client too slow, dropping patch",
				zap.String("op", string(ch.Op)))
		}
	}

	view := livefeed.NewListView(items, l.hub, serviceDeleter{svc: l.feedbackService, requesterID: userID}, notify, l.logger)
	go view.Run(ctx)

	// Writer: the view's patches become JSON frames. A write failure means the
	// client is gone, so the whole session is cancelled.
	go func() {
		for {
			select {
			case ch := <-changes:
				if err := ws.WriteJSON(ch); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Reader: delete requests flow into the view; a read error is the normal
	// disconnect path.
	for {
		var req liveRequest
		if err := ws.ReadJSON(&req); err != nil {
			break
		}

		if req.Action != "delete" {
			continue
		}
		id, err := uuid.Parse(req.ID)
		if err != nil {
			l.logger.Debug("ignoring delete request with bad id", zap.String("id", req.ID))
			continue
		}
		view.RequestDelete(id)
	}

	// Tear the view down before the socket closes so the hub subscription is
	// released on every exit path.
	cancel()
	<-view.Done()
}
