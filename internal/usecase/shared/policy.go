package shared

import (
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/pkg/config"
)

func NewLockoutPolicy(cfg config.BookingConfig) reservation.LockoutPolicy {
	return reservation.LockoutPolicy{
		Threshold:   cfg.LockoutThreshold,
		RapidWithin: cfg.RapidCancelWithin,
		Window:      cfg.LockoutDuration,
	}
}
