package shared

import (
	"context"
	"time"

	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/salon"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/domain/user"
	sqlc "salon-reserve/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Reservations() ReservationRepository
	Menus() MenuRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Salons() SalonRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	SalonByID(ctx context.Context, id uuid.UUID) (*SalonSnapshot, error)
	OperatorByID(ctx context.Context, id uuid.UUID) (*OperatorSnapshot, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	CancellationsSince(ctx context.Context, customerID uuid.UUID, since time.Time) ([]reservation.CancellationRecord, error)
	HasUpcomingReservation(ctx context.Context, customerID uuid.UUID, today slot.Date, now slot.TimeOfDay) (bool, error)
	CountDivisions(ctx context.Context, salonID uuid.UUID, ids []uuid.UUID) (int, error)
}

type SlotRepository interface {
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) (*slot.Slot, error)
	MarkBooked(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error
	Free(ctx context.Context, tx sqlc.DBTX, operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) error
	InsertMany(ctx context.Context, tx sqlc.DBTX, salonID, operatorID uuid.UUID, occurrences []slot.Occurrence) (int64, error)
	DeleteOpen(ctx context.Context, tx sqlc.DBTX, operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) error
	DeleteOpenByDate(ctx context.Context, tx sqlc.DBTX, operatorID uuid.UUID, date slot.Date) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type MenuRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*menu.Menu, error)
	Create(ctx context.Context, tx sqlc.DBTX, m *menu.Menu, now time.Time) error
	Update(ctx context.Context, tx sqlc.DBTX, m *menu.Menu, now time.Time) error
	Deactivate(ctx context.Context, tx sqlc.DBTX, salonID, menuID uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, reservationID uuid.UUID) error
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, kind user.Kind, userID uuid.UUID) error
	LockCustomer(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) error
}

type SalonRepository interface {
	UpdateSettings(ctx context.Context, tx sqlc.DBTX, salonID uuid.UUID, s salon.Settings) error
}

// AvailabilityCache holds the raw open slots of an (operator, month); derivation
// against the clock happens on every read.
type AvailabilityCache interface {
	GetOpenSlots(ctx context.Context, operatorID uuid.UUID, month slot.Date) ([]slot.Occurrence, bool)
	SetOpenSlots(ctx context.Context, operatorID uuid.UUID, month slot.Date, occurrences []slot.Occurrence)
	Invalidate(ctx context.Context, operatorID uuid.UUID, month slot.Date)
}

type BookingMetrics interface {
	ReservationCreated(result string)
	ReservationCanceled(actor string)
	AvailabilityCacheLookup(hit bool)
	SlotsGenerated(n int64)
	ObserveCommit(d time.Duration)
}
