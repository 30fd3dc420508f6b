package usecase

import (
	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken accepts access tokens only; refresh tokens never authorize API calls.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Principal{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return user.Principal{}, jwt.ErrInvalidToken
	}
	return claims.Principal()
}
