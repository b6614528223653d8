package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/services"
	"github.com/connectus-hq/connectus-backend/internal/validate"
)

type MessageHandler struct {
	log            *logger.Logger
	messageService services.MessageService
}

func NewMessageHandler(log *logger.Logger, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		log:            log.With("handler", "MessageHandler"),
		messageService: messageService,
	}
}

// Send delivers a direct message; the path id is the recipient.
func (h *MessageHandler) Send(c *gin.Context) {
	rd, ok := actor(c)
	if !ok {
		return
	}
	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid recipient id")
		return
	}
	var req validate.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	message, err := h.messageService.Send(c.Request.Context(), rd.UserID, recipientID, req.Content)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusCreated, "Message sent", message)
}

// ListThread reads the conversation with the user in the path, oldest-first.
func (h *MessageHandler) ListThread(c *gin.Context) {
	rd, ok := actor(c)
	if !ok {
		return
	}
	otherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid user id")
		return
	}
	result, err := h.messageService.ListThread(c.Request.Context(), rd.UserID, otherID, queryPage(c))
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Messages", gin.H{
		"messages": result.Messages,
		"page":     result.Page,
		"pages":    result.Pages,
	})
}

// Delete soft-deletes a message; the path id is the message.
func (h *MessageHandler) Delete(c *gin.Context) {
	rd, ok := actor(c)
	if !ok {
		return
	}
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid message id")
		return
	}
	message, err := h.messageService.SoftDelete(c.Request.Context(), rd.UserID, messageID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Message deleted", message)
}
