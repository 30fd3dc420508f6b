//go:build unit

package salon_test

import (
	"strings"
	"testing"

	"salon-reserve/internal/domain/salon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettings(t *testing.T) {
	tests := []struct {
		name     string
		salon    string
		timezone string
		deadline int
		wantErr  error
	}{
		{name: "valid", salon: "Nail Room", timezone: "Asia/Tokyo", deadline: 1440},
		{name: "zero deadline allows cancelling until the start", salon: "Nail Room", timezone: "UTC", deadline: 0},
		{name: "upper bound", salon: "Nail Room", timezone: "Asia/Tokyo", deadline: salon.MaxCancellationDeadlineMinutes},
		{name: "blank name", salon: "   ", timezone: "Asia/Tokyo", deadline: 60, wantErr: salon.ErrNameRequired},
		{name: "long name", salon: strings.Repeat("あ", 101), timezone: "Asia/Tokyo", deadline: 60, wantErr: salon.ErrNameTooLong},
		{name: "missing timezone", salon: "Nail Room", deadline: 60, wantErr: salon.ErrTimezoneRequired},
		{name: "unknown timezone", salon: "Nail Room", timezone: "Mars/Olympus", deadline: 60, wantErr: salon.ErrInvalidTimezone},
		{name: "negative deadline", salon: "Nail Room", timezone: "Asia/Tokyo", deadline: -1, wantErr: salon.ErrInvalidDeadline},
		{name: "deadline past thirty days", salon: "Nail Room", timezone: "Asia/Tokyo", deadline: salon.MaxCancellationDeadlineMinutes + 1, wantErr: salon.ErrInvalidDeadline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := salon.NewSettings(tt.salon, tt.timezone, tt.deadline)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.salon), s.Name())
			assert.Equal(t, tt.timezone, s.Timezone())
			assert.Equal(t, tt.deadline, s.CancellationDeadlineMinutes())
		})
	}
}
