package middleware

import (
	"errors"
	"net/http"

	"github.com/bondtrack/backend/internal/application/tenantapp"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/infrastructure/logger"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantIDKey is the gin context key for the resolved tenant ID
const TenantIDKey = "tenant_id"

// TenantResolver creates middleware that attaches the requesting
// user's tenant to the context. The contract:
//
//   - no authenticated user: proceed with no tenant attached
//   - authenticated user without a tenant: 403, request never reaches
//     the handler
//   - authenticated user with a tenant: tenant ID attached
//
// The tenant is resolved fresh per request from the user record, so
// assignment changes take effect immediately.
func TenantResolver(resolver *tenantapp.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := GetJWTUserID(c)
		if userIDStr == "" {
			c.Next()
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		tenantID, err := resolver.Resolve(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, shared.ErrNoTenant) {
				c.AbortWithStatusJSON(http.StatusForbidden,
					dto.NewErrorResponse(dto.ErrCodeNoTenant, shared.ErrNoTenant.Message))
				return
			}
			if errors.Is(err, shared.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrCodeInternal, "Internal server error"))
			return
		}

		c.Set(TenantIDKey, tenantID)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithTenantID(ctx, log, tenantID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetTenantID returns the resolved tenant ID for the request. ok is
// false when no tenant is attached (unauthenticated request).
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(TenantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
