package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/permission"
	"github.com/hireloop/hireloop/internal/infrastructure/auth"
	"github.com/hireloop/hireloop/internal/infrastructure/ratelimit"
	"github.com/hireloop/hireloop/internal/shared/authorization"
	"github.com/hireloop/hireloop/internal/shared/constants"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 5)
	mw := NewAuthMiddleware(jwtService, logger.NewNopLogger())

	engine := gin.New()
	engine.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":   c.GetUint(constants.ContextKeyUserID),
			"tenant": c.GetUint(constants.ContextKeyTenantID),
			"slug":   c.GetString(constants.ContextKeyTenantSlug),
			"role":   c.GetString(constants.ContextKeyUserRole),
		})
	})

	token, err := jwtService.Generate(7, 3, "acme", authorization.RoleOwner)
	require.NoError(t, err)

	w := serve(engine, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token.Token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":7,"tenant":3,"slug":"acme","role":"owner"}`, w.Body.String())

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := map[string]string{}
			if tt.header != "" {
				header["Authorization"] = tt.header
			}
			w := serve(engine, http.MethodGet, "/me", header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://dashboard.example.com"}))
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(engine, http.MethodGet, "/x", map[string]string{"Origin": "https://dashboard.example.com"})
	assert.Equal(t, "https://dashboard.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(engine, http.MethodGet, "/x", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(engine, http.MethodOptions, "/x", map[string]string{"Origin": "https://dashboard.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, "https://any.example.com", getAllowedOrigin("https://any.example.com", []string{"*"}))
}

type stubEnforcer struct {
	permission.Enforcer
	grants map[string]bool
	err    error
}

func (s *stubEnforcer) Enforce(subject string, resource permission.Resource, action permission.Action) (bool, error) {
	return s.grants[subject+":"+string(resource)+":"+string(action)], s.err
}

func TestPermissionMiddleware(t *testing.T) {
	enforcer := &stubEnforcer{grants: map[string]bool{"owner:billing:manage": true}}
	mw := NewPermissionMiddleware(enforcer, logger.NewNopLogger())

	newEngine := func(role string) *gin.Engine {
		engine := gin.New()
		engine.POST("/cancel", func(c *gin.Context) {
			if role != "" {
				c.Set(constants.ContextKeyUserRole, role)
			}
			c.Next()
		}, mw.RequirePermission(permission.ResourceBilling, permission.ActionManage), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return engine
	}

	assert.Equal(t, http.StatusOK, serve(newEngine("owner"), http.MethodPost, "/cancel", nil).Code)
	assert.Equal(t, http.StatusForbidden, serve(newEngine("recruiter"), http.MethodPost, "/cancel", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(newEngine(""), http.MethodPost, "/cancel", nil).Code)

	enforcer.err = errors.New("adapter down")
	assert.Equal(t, http.StatusInternalServerError, serve(newEngine("owner"), http.MethodPost, "/cancel", nil).Code)
}

type stubFeatureChecker struct {
	check billing.FeatureCheck
}

func (s *stubFeatureChecker) CheckFeature(ctx context.Context, tenantID uint, feature billing.Feature) (billing.FeatureCheck, error) {
	return s.check, nil
}

func TestFeatureGateMiddleware(t *testing.T) {
	gate := billing.NewGate(billing.DefaultCatalog())
	free, err := billing.NewTenantSubscription(1, billing.TierFree, billing.CycleMonthly, time.Now())
	require.NoError(t, err)
	checker := &stubFeatureChecker{check: gate.CheckFeature(free, billing.FeatureFullAnalyticsEngine)}
	mw := NewFeatureGateMiddleware(checker, logger.NewNopLogger())

	engine := gin.New()
	engine.GET("/export", func(c *gin.Context) {
		c.Set(constants.ContextKeyTenantID, uint(1))
		c.Next()
	}, mw.RequireFeature(billing.FeatureFullAnalyticsEngine), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(engine, http.MethodGet, "/export", nil)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), `"feature":"full_analytics_engine"`)

	ultra, err := billing.NewTenantSubscription(1, billing.TierUltra, billing.CycleMonthly, time.Now())
	require.NoError(t, err)
	checker.check = gate.CheckFeature(ultra, billing.FeatureFullAnalyticsEngine)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/export", nil).Code)
}

type stubLimiter struct {
	ratelimit.RateLimiter
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(ctx context.Context, key string, limits ratelimit.Limits) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

type countingObserver struct {
	limited  []string
	requests []string
}

func (o *countingObserver) RecordRateLimited(path string) { o.limited = append(o.limited, path) }

func (o *countingObserver) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	o.requests = append(o.requests, method+" "+path)
}

func TestRateLimiter(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	observer := &countingObserver{}
	rl := NewRateLimiter(limiter, ratelimit.Limits{PerMinute: 1}, observer, logger.NewNopLogger())

	engine := gin.New()
	engine.POST("/apply/:slug", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/apply/dev", nil).Code)
	require.Len(t, limiter.keys, 1)
	assert.Contains(t, limiter.keys[0], ":/apply/:slug")

	limiter.allowed = false
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodPost, "/apply/dev", nil).Code)
	assert.Equal(t, []string{"/apply/:slug"}, observer.limited)

	limiter.err = errors.New("redis down")
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/apply/dev", nil).Code)
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	observer := &countingObserver{}
	engine := gin.New()
	engine.Use(Metrics(observer))
	engine.GET("/jobs/:code", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(engine, http.MethodGet, "/jobs/DEV-1", nil)
	serve(engine, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, []string{"GET /jobs/:code", "GET unmatched"}, observer.requests)
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger()))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(engine, http.MethodGet, "/panic", map[string]string{"Authorization": "Bearer secret"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
