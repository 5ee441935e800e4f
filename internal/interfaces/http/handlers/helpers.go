package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/application/billing/quota"
	"github.com/hireloop/hireloop/internal/shared/constants"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

// respondError writes err in the response envelope. Denied capability checks carry the
// check itself as data so the client can show the upgrade notification.
func respondError(c *gin.Context, err error) {
	var denied *quota.DeniedError
	if errors.As(err, &denied) {
		utils.ErrorResponseWithData(c, denied.AppError(), denied.Check)
		return
	}
	utils.ErrorResponseWithError(c, err)
}

// currentTenant returns the tenant set by the auth middleware, or writes a 401.
func currentTenant(c *gin.Context) (uint, bool) {
	tenantID := c.GetUint(constants.ContextKeyTenantID)
	if tenantID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return 0, false
	}
	return tenantID, true
}
