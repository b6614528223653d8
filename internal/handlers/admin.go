package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/services"
	"github.com/connectus-hq/connectus-backend/internal/validate"
)

// AdminHandler owns the email verification and invitation flows.
type AdminHandler struct {
	log            *logger.Logger
	accountService services.AccountService
}

func NewAdminHandler(log *logger.Logger, accountService services.AccountService) *AdminHandler {
	return &AdminHandler{
		log:            log.With("handler", "AdminHandler"),
		accountService: accountService,
	}
}

func (h *AdminHandler) VerifyEmail(c *gin.Context) {
	tokenID := c.Query("token")
	if tokenID == "" {
		AbortUnauthorized(c, "no token provided")
		return
	}
	user, err := h.accountService.VerifyEmail(c.Request.Context(), tokenID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, user.Email+" verified", user)
}

func (h *AdminHandler) ResendVerification(c *gin.Context) {
	var req validate.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}
	user, err := h.accountService.ResendVerification(c.Request.Context(), req.Email)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Verification email sent", user)
}

func (h *AdminHandler) CreateRegistrationInvite(c *gin.Context) {
	var req validate.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}
	token, err := h.accountService.CreateRegistrationInvite(c.Request.Context(), req.Email)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, "Registration email sent", token)
}
