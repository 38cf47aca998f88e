package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"rental-pricing/internal/domain/auth"
	"rental-pricing/internal/handler/httperr"
	"rental-pricing/internal/pkg/errs"
	"rental-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStaffKey  = "staff"
	ctxClaimsKey = "jwt_claims"
)

var errMissingToken = errs.New("access token required")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		staff, err := m.tokenValidator.ValidateToken(token)
		if errors.Is(err, auth.ErrNotStaff) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Staff access required", nil)
			return
		}
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxStaffKey, staff)
		c.Set(ctxClaimsKey, map[string]any{
			"staff_id": staff.ID(),
			"username": staff.Username(),
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > len("Bearer ") && strings.EqualFold(authHeader[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetStaff(c *gin.Context) (auth.Staff, bool) {
	v, exists := c.Get(ctxStaffKey)
	if !exists {
		return auth.Staff{}, false
	}
	staff, ok := v.(auth.Staff)
	return staff, ok
}
