package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/services"
	"github.com/connectus-hq/connectus-backend/internal/validate"
)

type AuthHandler struct {
	log            *logger.Logger
	authService    services.AuthService
	accountService services.AccountService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService, accountService services.AccountService) *AuthHandler {
	return &AuthHandler{
		log:            log.With("handler", "AuthHandler"),
		authService:    authService,
		accountService: accountService,
	}
}

// Signup serves both registration paths: an admin key in the body creates an
// unverified admin account; otherwise a registration token in the query
// creates a verified staff account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req validate.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}

	tokenID := c.Query("token")
	if tokenID == "" && req.AdminKey == "" {
		AbortUnauthorized(c, "no token or admin key provided")
		return
	}

	in := services.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
	}

	if req.AdminKey != "" {
		user, err := h.accountService.RegisterAdmin(c.Request.Context(), in, req.AdminKey)
		if err != nil {
			RespondError(c, h.log, err)
			return
		}
		Respond(c, http.StatusCreated, "Admin created", user)
		return
	}

	user, err := h.accountService.RegisterStaff(c.Request.Context(), in, tokenID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusCreated, "User created", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, false)
}

// AdminLogin additionally rejects regular staff with an authorization
// failure.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, true)
}

func (h *AuthHandler) login(c *gin.Context, adminOnly bool) {
	var req validate.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, adminOnly)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	// Session travels back both ways: http-only cookie and response header.
	c.SetCookie("token", token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
	Respond(c, http.StatusOK, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}
