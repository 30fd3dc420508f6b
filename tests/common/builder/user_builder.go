//go:build unit || e2e

package builder

import (
	"time"

	"salon-reserve/internal/domain/user"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserBuilder builds operators and customers; Kind selects which.
type UserBuilder struct {
	ID           uuid.UUID
	SalonID      uuid.UUID
	Kind         user.Kind
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        *string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		SalonID:      uuid.New(),
		Kind:         user.KindOperator,
		Name:         "Yui Tanaka",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildPrincipal() user.Principal {
	p := user.Principal{
		UserID:  u.ID,
		Kind:    u.Kind,
		SalonID: u.SalonID,
	}
	if u.Kind == user.KindOperator {
		p.Role = user.Role(u.Role)
	}
	return p
}

func (u *UserBuilder) BuildSession() user.Session {
	switch u.Kind {
	case user.KindCustomer:
		return user.CustomerSession{Profile: user.CustomerProfile{
			ID:      u.ID,
			SalonID: u.SalonID,
			Name:    u.Name,
			Email:   u.Email,
			Phone:   u.Phone,
		}}
	case user.KindOperator:
		return user.OperatorSession{Profile: user.OperatorProfile{
			ID:       u.ID,
			SalonID:  u.SalonID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     user.Role(u.Role),
			IsActive: u.IsActive,
		}}
	default:
		return user.Anonymous{}
	}
}

func (u *UserBuilder) BuildOperatorInfra() sqlc.Operators {
	now := time.Now()
	return sqlc.Operators{
		ID:           u.ID,
		SalonID:      u.SalonID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildCustomerInfra() sqlc.Customers {
	now := time.Now()
	var phone pgtype.Text
	if u.Phone != nil {
		phone = pgtype.Text{String: *u.Phone, Valid: true}
	}
	return sqlc.Customers{
		ID:           u.ID,
		SalonID:      u.SalonID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        phone,
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	view := &queries.AuthorizedUserView{
		ID:       u.ID,
		SalonID:  u.SalonID,
		Kind:     u.Kind.String(),
		Name:     u.Name,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
	if u.Kind == user.KindOperator {
		view.Role = u.Role
	}
	return view
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithSalonID(salonID uuid.UUID) *UserBuilder {
	u.SalonID = salonID
	return u
}

func (u *UserBuilder) AsCustomer() *UserBuilder {
	u.Kind = user.KindCustomer
	u.Name = "Hanako Sato"
	u.Role = ""
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
