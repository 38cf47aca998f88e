package usecase

import (
	"errors"

	"rental-pricing/internal/domain/auth"
	"rental-pricing/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Staff, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.Staff, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if errors.Is(err, jwt.ErrNotStaff) {
		return auth.Staff{}, auth.ErrNotStaff
	}
	if err != nil {
		return auth.Staff{}, err
	}

	staffID := claims.StaffID
	if staffID == "" {
		staffID = claims.Subject
	}
	return auth.NewStaff(staffID, claims.Username)
}
