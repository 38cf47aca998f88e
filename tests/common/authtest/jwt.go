//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rental-pricing/internal/pkg/config"
	"rental-pricing/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateStaffToken(t *testing.T, staffID, username string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, h.cfg.TokenDuration)
	token, err := service.GenerateToken(staffID, username)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID, username string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, time.Millisecond)
	token, err := service.GenerateToken(staffID, username)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}
