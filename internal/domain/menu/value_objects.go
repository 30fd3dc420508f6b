package menu

import (
	"errors"
	"strings"
	"unicode/utf8"

	"salon-reserve/internal/domain/slot"
)

var (
	ErrInvalidDuration       = errors.New("duration must be greater than zero")
	ErrInvalidDurationHours  = errors.New("duration hours cannot be negative")
	ErrInvalidDurationMinute = errors.New("duration minutes must be between 0 and 59")
	ErrNegativePrice         = errors.New("price cannot be negative")
	ErrInvalidDiscountAmount = errors.New("discount amount cannot be negative")
	ErrInvalidCouponPeriod   = errors.New("coupon valid_from must not be after valid_until")
	ErrCouponPeriodRequired  = errors.New("coupon requires valid_from and valid_until")
	ErrNameRequired          = errors.New("menu name is required")
	ErrNameTooLong           = errors.New("menu name must be at most 100 characters")
)

const MaxNameLength = 100

// Duration is the treatment length in minutes, entered as an hours and minutes pair.
type Duration struct {
	minutes int
}

func NewDuration(hours, minutes int) (Duration, error) {
	if hours < 0 {
		return Duration{}, ErrInvalidDurationHours
	}
	if minutes < 0 || minutes > 59 {
		return Duration{}, ErrInvalidDurationMinute
	}
	total := hours*60 + minutes
	if total <= 0 {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{minutes: total}, nil
}

func DurationFromMinutes(total int) (Duration, error) {
	if total <= 0 {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{minutes: total}, nil
}

func (d Duration) Minutes() int { return d.minutes }
func (d Duration) Hours() int   { return d.minutes / 60 }

// Remainder is the minutes part shown next to Hours.
func (d Duration) Remainder() int { return d.minutes % 60 }

// Price is an amount in yen.
type Price int64

func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return 0, ErrNegativePrice
	}
	return Price(amount), nil
}

func (p Price) Int64() int64 { return int64(p) }

// Coupon is a fixed discount valid on the dates in [validFrom, validUntil].
type Coupon struct {
	discount   Price
	validFrom  slot.Date
	validUntil slot.Date
}

func NewCoupon(discountAmount int64, validFrom, validUntil *slot.Date) (Coupon, error) {
	if discountAmount < 0 {
		return Coupon{}, ErrInvalidDiscountAmount
	}
	if validFrom == nil || validUntil == nil || validFrom.IsZero() || validUntil.IsZero() {
		return Coupon{}, ErrCouponPeriodRequired
	}
	if validFrom.After(*validUntil) {
		return Coupon{}, ErrInvalidCouponPeriod
	}
	return Coupon{
		discount:   Price(discountAmount),
		validFrom:  *validFrom,
		validUntil: *validUntil,
	}, nil
}

func (c Coupon) IsValidOn(d slot.Date) bool {
	return !d.Before(c.validFrom) && !d.After(c.validUntil)
}

// Apply subtracts the discount, never going below zero.
func (c Coupon) Apply(p Price) Price {
	if c.discount >= p {
		return 0
	}
	return p - c.discount
}

func (c Coupon) Discount() Price       { return c.discount }
func (c Coupon) ValidFrom() slot.Date  { return c.validFrom }
func (c Coupon) ValidUntil() slot.Date { return c.validUntil }

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
