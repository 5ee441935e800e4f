package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/infrastructure/config"
	"github.com/hireloop/hireloop/internal/infrastructure/repository/repotest"
	"github.com/hireloop/hireloop/internal/shared/authorization"
	sharedConfig "github.com/hireloop/hireloop/internal/shared/config"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{AllowedOrigins: []string{"*"}},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "router-test-secret", AccessExpMinutes: 5},
		},
		Billing: sharedConfig.BillingConfig{Gateway: "mock"},
		Storage: sharedConfig.StorageConfig{ResumeDir: t.TempDir()},
		Metrics: sharedConfig.MetricsConfig{Enabled: true, Namespace: "routertest"},
	}

	router, err := NewRouter(repotest.NewDB(t), cfg, logger.NewNopLogger())
	require.NoError(t, err)
	router.SetupRoutes()
	t.Cleanup(router.Shutdown)
	return router
}

func serve(r *Router, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)
	return w
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)

	w = serve(r, http.MethodGet, "/plans", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "routertest_http_requests_total")
}

func TestRouter_WebhookWithoutSecretsIsUnavailable(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodPost, "/billing/webhook", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_RecruiterRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/jobs", "/candidates", "/billing/usage"} {
		w := serve(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouter_RolePermissions(t *testing.T) {
	r := newTestRouter(t)

	recruiter, err := r.jwtSvc.Generate(1, 1, "acme", authorization.RoleRecruiter)
	require.NoError(t, err)

	w := serve(r, http.MethodGet, "/jobs", recruiter.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/billing/cancel", recruiter.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/analytics/summary", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://dashboard.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
