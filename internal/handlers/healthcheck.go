package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	Respond(c, http.StatusOK, "ok", nil)
}

func Index(c *gin.Context) {
	Respond(c, http.StatusOK, "Welcome to the API", nil)
}
