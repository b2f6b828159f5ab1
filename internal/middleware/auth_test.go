package middleware

import (
	"hr_console/internal/config"
	"hr_console/internal/model"
	"hr_console/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(cfg)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "%d", util.OperatorIDFromContext(c.Request.Context()))
	})
	r.POST("/api/console/businesses", handlers...)
	return r
}

func token(t *testing.T, role model.OperatorRole) string {
	t.Helper()
	op := &model.Operator{Role: role, Email: "ops@acme.com"}
	op.ID = 12
	tok, err := util.GenerateJWT(op, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	r := newRouter(cfg)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/console/businesses", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/console/businesses", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/console/businesses", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, model.RoleAdmin))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12", w.Body.String())
}

func TestRoleMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	r := newRouter(cfg, RoleMiddleware(model.RoleAdmin))

	req := httptest.NewRequest(http.MethodPost, "/api/console/businesses", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, model.RoleViewer))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/console/businesses?token="+token(t, model.RoleAdmin), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
