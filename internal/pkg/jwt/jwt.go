package jwt

import (
	"errors"
	"time"

	"salon-reserve/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Kind      string    `json:"kind"`
	Role      string    `json:"role,omitempty"`
	SalonID   uuid.UUID `json:"salon_id"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) Principal() (user.Principal, error) {
	kind, err := user.NewKind(c.Kind)
	if err != nil {
		return user.Principal{}, err
	}
	p := user.Principal{UserID: c.UserID, Kind: kind, SalonID: c.SalonID}
	if kind == user.KindOperator {
		role, err := user.NewRole(c.Role)
		if err != nil {
			return user.Principal{}, err
		}
		p.Role = role
	}
	return p, nil
}

type Service struct {
	secretKey            []byte
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

func NewService(secretKey string, accessTokenDuration, refreshTokenDuration time.Duration) *Service {
	return &Service{
		secretKey:            []byte(secretKey),
		accessTokenDuration:  accessTokenDuration,
		refreshTokenDuration: refreshTokenDuration,
	}
}

func (s *Service) AccessTokenDuration() time.Duration  { return s.accessTokenDuration }
func (s *Service) RefreshTokenDuration() time.Duration { return s.refreshTokenDuration }

func (s *Service) GenerateAccessToken(p user.Principal) (string, error) {
	return s.generate(p, TokenTypeAccess, s.accessTokenDuration)
}

func (s *Service) GenerateRefreshToken(p user.Principal) (string, error) {
	return s.generate(p, TokenTypeRefresh, s.refreshTokenDuration)
}

func (s *Service) generate(p user.Principal, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    p.UserID,
		Kind:      p.Kind.String(),
		Role:      p.Role.String(),
		SalonID:   p.SalonID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
