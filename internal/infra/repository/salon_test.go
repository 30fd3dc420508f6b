//go:build unit

package repository_test

import (
	"context"
	"testing"

	"salon-reserve/internal/domain/salon"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/repository"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	repositorymock "salon-reserve/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSalonRepository_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	settings, err := salon.NewSettings("Nail Room", "Asia/Tokyo", 720)
	require.NoError(t, err)
	params := sqlc.UpdateSalonSettingsParams{
		ID:                          salonID,
		Name:                        "Nail Room",
		Timezone:                    "Asia/Tokyo",
		CancellationDeadlineMinutes: 720,
	}

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: settings written", rows: 1},
		{name: "error: unknown salon", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", dbErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSalonWriteQueries(ctrl)
			mockQueries.EXPECT().UpdateSalonSettings(ctx, nil, params).Return(tc.rows, tc.dbErr)

			err := repository.NewSalonRepository(mockQueries).UpdateSettings(ctx, nil, salonID, settings)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
		})
	}
}
