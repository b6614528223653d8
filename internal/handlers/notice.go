package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/services"
	"github.com/connectus-hq/connectus-backend/internal/validate"
)

type NoticeHandler struct {
	log            *logger.Logger
	noticeService  services.NoticeService
	accountService services.AccountService
}

func NewNoticeHandler(log *logger.Logger, noticeService services.NoticeService, accountService services.AccountService) *NoticeHandler {
	return &NoticeHandler{
		log:            log.With("handler", "NoticeHandler"),
		noticeService:  noticeService,
		accountService: accountService,
	}
}

type noticeBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *NoticeHandler) Create(c *gin.Context) {
	rd, ok := actor(c)
	if !ok {
		return
	}
	var req noticeBody
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	notice, err := h.noticeService.Create(c.Request.Context(), rd.UserID, req.Title, req.Content)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusCreated, "Notice created", notice)
}

func (h *NoticeHandler) Update(c *gin.Context) {
	noticeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid notice id")
		return
	}
	var req noticeBody
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	notice, err := h.noticeService.Update(c.Request.Context(), noticeID, req.Title, req.Content)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Notice updated", notice)
}

func (h *NoticeHandler) List(c *gin.Context) {
	result, err := h.noticeService.List(c.Request.Context(), queryPage(c))
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Notices", gin.H{
		"notices": result.Notices,
		"page":    result.Page,
		"pages":   result.Pages,
	})
}

func (h *NoticeHandler) View(c *gin.Context) {
	noticeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid notice id")
		return
	}
	view, err := h.noticeService.View(c.Request.Context(), noticeID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Notice", view)
}

// StartLeave places a staff member on leave, identified by email in the body.
func (h *NoticeHandler) StartLeave(c *gin.Context) {
	rd, ok := actor(c)
	if !ok {
		return
	}
	var req validate.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}
	user, err := h.accountService.StartLeave(c.Request.Context(), rd.UserID, req.Email)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Leave commenced", user)
}

// EndLeave returns a staff member from leave, identified by id in the path.
func (h *NoticeHandler) EndLeave(c *gin.Context) {
	rd, ok := actor(c)
	if !ok {
		return
	}
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "invalid user id")
		return
	}
	user, err := h.accountService.EndLeave(c.Request.Context(), rd.UserID, userID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Leave ended", user)
}
