package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/services"
)

// UserHandler serves the staff directory listings.
type UserHandler struct {
	log            *logger.Logger
	accountService services.AccountService
}

func NewUserHandler(log *logger.Logger, accountService services.AccountService) *UserHandler {
	return &UserHandler{
		log:            log.With("handler", "UserHandler"),
		accountService: accountService,
	}
}

func (h *UserHandler) AllStaff(c *gin.Context) {
	h.listBucket(c, services.BucketAll, "All staff")
}

func (h *UserHandler) RegularStaff(c *gin.Context) {
	h.listBucket(c, services.BucketRegular, "Regular staff")
}

func (h *UserHandler) AdminStaff(c *gin.Context) {
	h.listBucket(c, services.BucketAdmin, "Admin staff")
}

func (h *UserHandler) OnLeave(c *gin.Context) {
	h.listBucket(c, services.BucketOnLeave, "Users on leave")
}

func (h *UserHandler) listBucket(c *gin.Context, bucket, message string) {
	page := queryPage(c)
	search := c.Query("s")

	result, err := h.accountService.ListStaff(c.Request.Context(), bucket, search, page)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Respond(c, http.StatusOK, message, gin.H{
		"users": result.Users,
		"page":  result.Page,
		"pages": result.Pages,
	})
}

func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
