package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/application/billing/quota"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/shared/constants"
	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

// FeatureChecker is satisfied by quota.Service.
type FeatureChecker interface {
	CheckFeature(ctx context.Context, tenantID uint, feature billing.Feature) (billing.FeatureCheck, error)
}

// FeatureGateMiddleware rejects requests from tenants whose plan lacks a feature with
// 402 and the upgrade notification.
type FeatureGateMiddleware struct {
	checker FeatureChecker
	logger  logger.Interface
}

func NewFeatureGateMiddleware(checker FeatureChecker, logger logger.Interface) *FeatureGateMiddleware {
	return &FeatureGateMiddleware{
		checker: checker,
		logger:  logger,
	}
}

func (m *FeatureGateMiddleware) RequireFeature(feature billing.Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetUint(constants.ContextKeyTenantID)
		if tenantID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		check, err := m.checker.CheckFeature(c.Request.Context(), tenantID, feature)
		if err != nil {
			m.logger.Errorw("feature check failed", "error", err, "tenant_id", tenantID, "feature", feature)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		var denied *quota.DeniedError
		if err := quota.FeatureDenied(check); errors.As(err, &denied) {
			m.logger.Infow("feature not available on plan", "tenant_id", tenantID, "feature", feature)
			utils.ErrorResponseWithData(c, denied.AppError(), denied.Check)
			c.Abort()
			return
		}

		c.Next()
	}
}
