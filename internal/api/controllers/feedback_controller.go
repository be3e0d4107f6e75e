package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/request_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/models/response_models"
	"github.com/usamabinnadeem-10/realtime-feedback/internal/services"
	"github.com/usamabinnadeem-10/realtime-feedback/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// CreateFeedback godoc
// @Summary Submit feedback
// @Description Create a feedback item authored by the current session
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.CreateFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/feedback [post]
func (f *FeedbackController) CreateFeedback(c *gin.Context) {
	var req request_models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and description are required")
		return
	}

	authorID, authorEmail, ok := currentIdentity(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	feedback, err := f.feedbackService.CreateFeedback(c.Request.Context(), authorID, authorEmail, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FeedbackFromModel(*feedback), "Feedback submitted")
}

// ListFeedback godoc
// @Summary List feedback
// @Description Get all feedback, newest first
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	feedbacks, err := f.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FeedbackListFromModels(feedbacks), "Feedback fetched successfully")
}

// DeleteFeedback godoc
// @Summary Delete feedback
// @Description Delete a feedback item authored by the current session
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/feedback/{id} [delete]
func (f *FeedbackController) DeleteFeedback(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	requesterID, _, ok := currentIdentity(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := f.feedbackService.DeleteFeedback(c.Request.Context(), id, requesterID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback deleted")
}
