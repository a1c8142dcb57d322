package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/middleware"
	"github.com/SscSPs/advisor_client_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	r.GET("/me", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		email, ok := middleware.GetAdvisorEmailFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, email)
	})
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := protectedRouter()
	now := time.Now()

	valid, err := utils.GenerateJWT("ada@example.com", "advisor", testSecret, time.Hour, "test", now)
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("ada@example.com", "advisor", testSecret, time.Hour, "test", now.Add(-2*time.Hour))
	require.NoError(t, err)
	wrongRole, err := utils.GenerateJWT("ada@example.com", "client", testSecret, time.Hour, "test", now)
	require.NoError(t, err)
	wrongSecret, err := utils.GenerateJWT("ada@example.com", "advisor", "other", time.Hour, "test", now)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "ada@example.com"},
		{"lower-case scheme", "bearer " + valid, http.StatusOK, "ada@example.com"},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Bearer {token}"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"wrong role", "Bearer " + wrongRole, http.StatusUnauthorized, "Invalid token claims"},
		{"wrong secret", "Bearer " + wrongSecret, http.StatusUnauthorized, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestGetLoggerFromCtx(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))
	ctx := middleware.WithLogger(context.Background(), logger)
	assert.Same(t, logger, middleware.GetLoggerFromCtx(ctx))
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("five per minute")
	assert.Error(t, err)
}
