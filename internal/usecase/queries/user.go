package queries

import (
	"context"

	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.Classify("user not found", errs.ErrNotFound)
	ErrUserInactive = errs.Classify("user inactive", errs.ErrForbidden)
)

type UserQueries interface {
	// Session resolves the principal into the tagged session union; nil yields Anonymous.
	Session(ctx context.Context, principal *user.Principal) (user.Session, error)
}

type UserReadStore interface {
	FindOperatorByID(ctx context.Context, id uuid.UUID) (*OperatorView, error)
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) Session(ctx context.Context, principal *user.Principal) (user.Session, error) {
	if principal == nil {
		return user.Anonymous{}, nil
	}

	switch principal.Kind {
	case user.KindCustomer:
		c, err := q.readStore.FindCustomerByID(ctx, principal.UserID)
		if err != nil {
			return nil, mapUserErr(err)
		}
		if !c.IsActive {
			return nil, ErrUserInactive
		}
		return user.CustomerSession{Profile: user.CustomerProfile{
			ID:      c.ID,
			SalonID: c.SalonID,
			Name:    c.Name,
			Email:   c.Email,
			Phone:   c.Phone,
		}}, nil

	case user.KindOperator:
		op, err := q.readStore.FindOperatorByID(ctx, principal.UserID)
		if err != nil {
			return nil, mapUserErr(err)
		}
		if !op.IsActive {
			return nil, ErrUserInactive
		}
		role, err := user.NewRole(op.Role)
		if err != nil {
			return nil, err
		}
		return user.OperatorSession{Profile: user.OperatorProfile{
			ID:       op.ID,
			SalonID:  op.SalonID,
			Name:     op.Name,
			Email:    op.Email,
			Role:     role,
			IsActive: op.IsActive,
		}}, nil

	default:
		return user.Anonymous{}, nil
	}
}

func mapUserErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrUserNotFound
	}
	return err
}
