//go:build unit

package repository

import (
	"context"
	"testing"

	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/infra"
	sqlc "salon-reserve/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateOperatorLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateCustomerLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserWriteQueries) LockCustomer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name       string
		kind       user.Kind
		mockMethod string
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - operator",
			kind:       user.KindOperator,
			mockMethod: "UpdateOperatorLastLogin",
		},
		{
			name:       "success - customer",
			kind:       user.KindCustomer,
			mockMethod: "UpdateCustomerLastLogin",
		},
		{
			name:       "database error",
			kind:       user.KindCustomer,
			mockMethod: "UpdateCustomerLastLogin",
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
		{
			name:     "unknown kind",
			kind:     user.Kind("guest"),
			wantKind: infra.KindConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			if tt.mockMethod != "" {
				mockQueries.On(tt.mockMethod, mock.Anything, mock.Anything, testUserID).Return(tt.mockError)
			}

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateLastLogin(context.Background(), nil, tt.kind, testUserID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestLockCustomer(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "unknown customer", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("LockCustomer", mock.Anything, mock.Anything, customerID).Return(customerID, tt.mockError)

			err := NewUserRepository(mockQueries).LockCustomer(context.Background(), nil, customerID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
