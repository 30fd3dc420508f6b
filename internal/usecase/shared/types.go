package shared

import (
	"time"

	"salon-reserve/internal/domain/slot"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the read models.

type SalonSnapshot struct {
	ID                          uuid.UUID
	Location                    *time.Location
	CancellationDeadlineMinutes int
}

type OperatorSnapshot struct {
	ID       uuid.UUID
	SalonID  uuid.UUID
	Role     string
	IsActive bool
}

type CustomerSnapshot struct {
	ID       uuid.UUID
	SalonID  uuid.UUID
	IsActive bool
}

type CategorySnapshot struct {
	ID      uuid.UUID
	SalonID uuid.UUID
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	SalonID    uuid.UUID
	CustomerID uuid.UUID
	OperatorID uuid.UUID
	Status     string
	Date       slot.Date
	Time       slot.TimeOfDay
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}
