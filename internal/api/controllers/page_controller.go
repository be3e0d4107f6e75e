package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/response_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/services"
)

type pageUser struct {
	ID    string
	Email string
}

type PageController struct {
	feedbackService services.FeedbackServiceInterface
	logger          *zap.Logger
}

func NewPageController(feedbackService services.FeedbackServiceInterface, logger *zap.Logger) *PageController {
	return &PageController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

func (p *PageController) sessionUser(c *gin.Context) *pageUser {
	id, email, ok := currentIdentity(c)
	if !ok {
		return nil
	}
	return &pageUser{ID: id.String(), Email: email}
}

func (p *PageController) snapshot(c *gin.Context) []response_models.FeedbackResponse {
	feedbacks, err := p.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		// The page still renders; the live feed will deliver the list once
		// the websocket connects.
		p.logger.Error("failed to load feedback snapshot for page", zap.Error(err))
		return nil
	}
	return response_models.FeedbackListFromModels(feedbacks)
}

// Landing renders the public home page. Authenticated users go straight to
// the dashboard.
func (p *PageController) Landing(c *gin.Context) {
	user := p.sessionUser(c)
	if user != nil {
		c.Redirect(http.StatusFound, "/feedback")
		return
	}

	c.HTML(http.StatusOK, "landing.html", gin.H{
		"User":     nil,
		"Feedback": p.snapshot(c),
	})
}

// Dashboard renders the feedback board. Anonymous visitors are redirected to
// the login page, not shown an error.
func (p *PageController) Dashboard(c *gin.Context) {
	user := p.sessionUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "feedback.html", gin.H{
		"User":     user,
		"Feedback": p.snapshot(c),
	})
}

func (p *PageController) LoginPage(c *gin.Context) {
	if p.sessionUser(c) != nil {
		c.Redirect(http.StatusFound, "/feedback")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"User": nil})
}

func (p *PageController) SignupPage(c *gin.Context) {
	if p.sessionUser(c) != nil {
		c.Redirect(http.StatusFound, "/feedback")
		return
	}
	c.HTML(http.StatusOK, "signup.html", gin.H{"User": nil})
}
