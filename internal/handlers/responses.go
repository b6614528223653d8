package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/services"
	"github.com/connectus-hq/connectus-backend/internal/validate"
)

type ResponseHandler struct {
	log             *logger.Logger
	responseService services.ResponseService
}

func NewResponseHandler(log *logger.Logger, responseService services.ResponseService) *ResponseHandler {
	return &ResponseHandler{
		log:             log.With("handler", "ResponseHandler"),
		responseService: responseService,
	}
}

func (h *ResponseHandler) Create(c *gin.Context) {
	rd, ok := actor(c)
	if !ok {
		return
	}
	noticeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid notice id")
		return
	}
	var req validate.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	response, err := h.responseService.Create(c.Request.Context(), rd.UserID, noticeID, req.Content)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusCreated, "Response created", response)
}

func (h *ResponseHandler) ListForNotice(c *gin.Context) {
	noticeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid notice id")
		return
	}
	responses, err := h.responseService.ListForNotice(c.Request.Context(), noticeID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "All responses", responses)
}

func (h *ResponseHandler) Edit(c *gin.Context) {
	rd, ok := actor(c)
	if !ok {
		return
	}
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid response id")
		return
	}
	var req validate.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	response, err := h.responseService.Edit(c.Request.Context(), rd.UserID, responseID, req.Content)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Response edited", response)
}

func (h *ResponseHandler) Delete(c *gin.Context) {
	rd, ok := actor(c)
	if !ok {
		return
	}
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid response id")
		return
	}
	response, err := h.responseService.SoftDelete(c.Request.Context(), rd.UserID, responseID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Response deleted", response)
}
