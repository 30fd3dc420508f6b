package salon

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrNameRequired     = errors.New("salon name is required")
	ErrNameTooLong      = errors.New("salon name must be at most 100 characters")
	ErrInvalidTimezone  = errors.New("unknown timezone")
	ErrInvalidDeadline  = errors.New("cancellation deadline must be between 0 and 43200 minutes")
	ErrTimezoneRequired = errors.New("timezone is required")
)

const (
	MaxNameLength = 100
	// MaxCancellationDeadlineMinutes is thirty days.
	MaxCancellationDeadlineMinutes = 30 * 24 * 60
)

// Settings are the operator-editable salon values that feed booking policy.
type Settings struct {
	name                        string
	location                    *time.Location
	cancellationDeadlineMinutes int
}

func NewSettings(name, timezone string, cancellationDeadlineMinutes int) (Settings, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Settings{}, ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Settings{}, ErrNameTooLong
	}
	if timezone == "" {
		return Settings{}, ErrTimezoneRequired
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Settings{}, ErrInvalidTimezone
	}
	if cancellationDeadlineMinutes < 0 || cancellationDeadlineMinutes > MaxCancellationDeadlineMinutes {
		return Settings{}, ErrInvalidDeadline
	}
	return Settings{
		name:                        name,
		location:                    loc,
		cancellationDeadlineMinutes: cancellationDeadlineMinutes,
	}, nil
}

func (s Settings) Name() string                     { return s.name }
func (s Settings) Location() *time.Location         { return s.location }
func (s Settings) Timezone() string                 { return s.location.String() }
func (s Settings) CancellationDeadlineMinutes() int { return s.cancellationDeadlineMinutes }
