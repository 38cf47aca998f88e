//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"rental-pricing/internal/handler/middleware"
	"rental-pricing/internal/pkg/jwt"
	"rental-pricing/internal/usecase"
	"rental-pricing/tests/common/httptest"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	r.GET("/protected", mw.RequireStaff(), func(c *gin.Context) {
		staff, ok := middleware.GetStaff(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"staff_id": staff.ID(), "username": staff.Username()})
	})
	return r
}

func TestAuthMiddleware_RequireStaff(t *testing.T) {
	svc := jwt.NewService("secret", "rental-admin", time.Hour)
	router := newAuthRouter(svc)

	t.Run("valid staff token", func(t *testing.T) {
		token, err := svc.GenerateToken("12", "nok")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "12", body["staff_id"])
		assert.Equal(t, "nok", body["username"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("token for a non-staff account", func(t *testing.T) {
		claims := jwt.Claims{
			StaffID: "12",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "rental-admin",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Staff access required")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other", "rental-admin", time.Hour)
		token, err := other.GenerateToken("12", "nok")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
