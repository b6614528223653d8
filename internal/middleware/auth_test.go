package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/requestdata"
	"github.com/connectus-hq/connectus-backend/internal/services"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

const testSecret = "middleware-secret"

func newTestRouter(t *testing.T) (*gin.Engine, services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	// Token validation never touches storage, so no DB or user repo is needed.
	auth := services.NewAuthService(nil, log, nil, testSecret, time.Hour, 4)
	am := NewAuthMiddleware(log, auth)

	router := gin.New()
	router.GET("/me", am.RequireAuth(), func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		require.NotNil(t, rd)
		c.JSON(http.StatusOK, gin.H{"user_id": rd.UserID.String()})
	})
	router.GET("/admin", am.RequireAuth(), am.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, auth
}

func issueToken(t *testing.T, auth services.AuthService, authority int) (uuid.UUID, string) {
	t.Helper()
	user := &types.User{ID: uuid.New(), Authority: authority}
	token, err := auth.IssueSession(user)
	require.NoError(t, err)
	return user.ID, token
}

func TestRequireAuth(t *testing.T) {
	router, auth := newTestRouter(t)

	t.Run("no credential", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer header", func(t *testing.T) {
		userID, token := issueToken(t, auth, types.AuthorityStaff)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("token cookie", func(t *testing.T) {
		userID, token := issueToken(t, auth, types.AuthorityStaff)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	router, auth := newTestRouter(t)

	t.Run("staff is forbidden", func(t *testing.T) {
		_, token := issueToken(t, auth, types.AuthorityStaff)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin is admitted", func(t *testing.T) {
		_, token := issueToken(t, auth, types.AuthorityAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
