//go:build unit || e2e

package builder

import (
	reqdto "salon-reserve/internal/handler/dto/request"
)

// LoginBuilder builds login payloads; the same form serves operators and customers.
type LoginBuilder struct {
	Email    string
	Password string
}

func NewLoginBuilder() *LoginBuilder {
	return &LoginBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (b *LoginBuilder) WithEmail(email string) *LoginBuilder {
	b.Email = email
	return b
}

func (b *LoginBuilder) WithPassword(password string) *LoginBuilder {
	b.Password = password
	return b
}

func (b *LoginBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}
