package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/services"
	"github.com/connectus-hq/connectus-backend/internal/validate"
)

type FeedbackHandler struct {
	log             *logger.Logger
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(log *logger.Logger, feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		log:             log.With("handler", "FeedbackHandler"),
		feedbackService: feedbackService,
	}
}

// Submit records feedback without attributing it to the caller.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req validate.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	feedback, err := h.feedbackService.Submit(c.Request.Context(), req.Content)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusCreated, "Feedback recorded", feedback)
}

func (h *FeedbackHandler) List(c *gin.Context) {
	result, err := h.feedbackService.List(c.Request.Context(), queryPage(c))
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Feedbacks retrieved", gin.H{
		"feedback": result.Feedback,
		"page":     result.Page,
		"pages":    result.Pages,
	})
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid feedback id")
		return
	}
	if err := h.feedbackService.Delete(c.Request.Context(), feedbackID); err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Feedback deleted", nil)
}
