package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

const endpointCreateReservation = "POST /api/reservations"

const (
	topicReservationCreated   = "reservation_created"
	topicReservationCanceled  = "reservation_canceled"
	topicReservationCompleted = "reservation_completed"
	topicReservationNoShow    = "reservation_noshow"
)

var (
	ErrOperatorNotFound        = queries.ErrOperatorNotFound
	ErrMenuNotFound            = queries.ErrMenuNotFound
	ErrActiveReservationExists = queries.ErrActiveReservationExists
	ErrReservationNotFound     = queries.ErrReservationNotFound
	ErrReservationAccess       = queries.ErrReservationAccess
	ErrSalonNotFound           = queries.ErrSalonNotFound

	ErrCustomerNotFound        = errs.Classify("customer not found", errs.ErrNotFound)
	ErrSlotNotFound            = errs.Classify("slot not found", errs.ErrNotFound)
	ErrSlotUnavailable         = errs.Classify("slot is no longer available", errs.ErrConflict)
	ErrLockedOut               = errs.Classify("reservation creation is temporarily locked", errs.ErrConflict)
	ErrInvalidReservation      = errs.Classify("invalid reservation", errs.ErrValidation)
	ErrDuplicateReservation    = errs.Classify("idempotency key reused with a different request", errs.ErrConflict)
	ErrIdempotencyInProgress   = errs.Classify("idempotency in progress", errs.ErrConflict)
	ErrReservationNotReserved  = errs.Classify("reservation is not reserved", errs.ErrConflict)
	ErrCancelDeadlinePassed    = errs.Classify("cancellation deadline has passed", errs.ErrConflict)
	ErrIdempotencyCheckFailed  = errs.Classify("idempotency check failed", errs.ErrTransient)
	ErrDatabaseOperationFailed = errs.Classify("database operation failed", errs.ErrTransient)
)

// LockoutError carries the instant at which the customer may book again.
type LockoutError struct {
	Until time.Time
}

func (e *LockoutError) Error() string {
	return "reservation creation is locked until " + e.Until.Format(time.RFC3339)
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, customerID uuid.UUID, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	CancelByCustomer(ctx context.Context, customerID, reservationID uuid.UUID) (*queries.ReservationView, error)
	CancelByOperator(ctx context.Context, salonID, reservationID uuid.UUID) (*queries.ReservationView, error)
	Complete(ctx context.Context, salonID, reservationID uuid.UUID) (*queries.ReservationView, error)
	MarkNoShow(ctx context.Context, salonID, reservationID uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationFactory *reservation.Factory
	reservationQueries queries.ReservationQueries
	cache              shared.AvailabilityCache
	metrics            shared.BookingMetrics
	clock              clock.Clock
	booking            config.BookingConfig
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationFactory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	cache shared.AvailabilityCache,
	metrics shared.BookingMetrics,
	clock clock.Clock,
	cfg config.Config,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationFactory: reservationFactory,
		reservationQueries: reservationQueries,
		cache:              cache,
		metrics:            metrics,
		clock:              clock,
		booking:            cfg.Booking,
	}
}

func (uc *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	customerID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	ctx, cancel := uc.withMutationTimeout(ctx)
	defer cancel()

	booking, err := req.ToDomain(customerID)
	if err != nil {
		err = errs.Tag(err, ErrInvalidReservation)
		uc.metrics.ReservationCreated(resultLabel(err))
		return nil, err
	}

	requestHash := calculateRequestHash(req)
	expiresAt := uc.clock.Now().Add(uc.booking.IdempotencyKeyTTL)

	existing, err := uc.handleIdempotency(ctx, idempotencyKey, customerID, requestHash, expiresAt)
	if err != nil {
		uc.metrics.ReservationCreated(resultLabel(err))
		return nil, err
	}
	if existing != nil {
		uc.metrics.ReservationCreated("replayed")
		return &CreateReservationResult{
			Reservation: existing,
			IsReplayed:  true,
		}, nil
	}

	view, err := uc.createNewReservation(ctx, booking, idempotencyKey)
	if err != nil {
		uc.releaseIdempotencyKey(ctx, idempotencyKey, customerID)
		uc.metrics.ReservationCreated(resultLabel(err))
		return nil, err
	}
	uc.metrics.ReservationCreated("created")
	return &CreateReservationResult{
		Reservation: view,
		IsReplayed:  false,
	}, nil
}

// handleIdempotency claims the key. A nil view with a nil error means the caller owns the key.
func (uc *reservationCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, customerID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.ReservationView, error) {
	var inserted bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inserted, err = tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, customerID, endpointCreateReservation, requestHash, expiresAt)
		return err
	})
	if err != nil {
		return nil, errs.Tag(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := uc.uow.CommandReads().IdempotencyByKey(ctx, idempotencyKey, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// expired between the claim and the read; the client may retry
			return nil, ErrIdempotencyInProgress
		}
		return nil, errs.Tag(err, ErrIdempotencyCheckFailed)
	}

	if existing.RequestHash != requestHash {
		return nil, ErrDuplicateReservation
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID != nil {
			// Use system-level access for idempotency replay
			return uc.reservationQueries.GetByIDSystem(ctx, *existing.ResultReservationID)
		}
		return nil, errs.Tag(errs.New("completed request missing result reservation ID"), ErrIdempotencyCheckFailed)

	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.Tag(errs.New("invalid idempotency key status"), ErrIdempotencyCheckFailed)
	}
}

func (uc *reservationCommandsImpl) releaseIdempotencyKey(ctx context.Context, idempotencyKey, customerID uuid.UUID) {
	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), idempotencyKey, customerID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "idempotency_key", idempotencyKey, "error", err.Error())
	}
}

func (uc *reservationCommandsImpl) createNewReservation(
	ctx context.Context,
	booking reservation.Booking,
	idempotencyKey uuid.UUID,
) (*queries.ReservationView, error) {
	reads := uc.uow.CommandReads()

	customer, err := reads.CustomerByID(ctx, booking.CustomerID)
	if err != nil {
		return nil, mapLookupErr(err, ErrCustomerNotFound)
	}
	if !customer.IsActive {
		return nil, ErrCustomerNotFound
	}

	operator, err := reads.OperatorByID(ctx, booking.OperatorID)
	if err != nil {
		return nil, mapLookupErr(err, ErrOperatorNotFound)
	}
	if !operator.IsActive || operator.SalonID != customer.SalonID {
		return nil, ErrOperatorNotFound
	}

	salon, err := reads.SalonByID(ctx, operator.SalonID)
	if err != nil {
		return nil, mapLookupErr(err, ErrSalonNotFound)
	}
	now := uc.clock.Now().In(salon.Location)

	// the salon always comes from the operator record
	booking.SalonID = operator.SalonID
	factory := uc.reservationFactory.In(salon.Location)

	var reservationID uuid.UUID
	started := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// concurrent commits of one customer queue here, so the eligibility reads below see each other
		if err := tx.Users().LockCustomer(ctx, tx.DB(), booking.CustomerID); err != nil {
			return mapLookupErr(err, ErrCustomerNotFound)
		}
		if err := uc.ensureEligible(ctx, tx.Reads(), booking.CustomerID, now); err != nil {
			return err
		}

		s, err := tx.Slots().LockForUpdate(ctx, tx.DB(), booking.OperatorID, booking.Date, booking.Time)
		if err != nil {
			return mapLookupErr(err, ErrSlotNotFound)
		}
		if err := s.Book(); err != nil {
			return errs.Tag(err, ErrSlotUnavailable)
		}

		menuEntity, err := tx.Menus().FindByID(ctx, tx.DB(), booking.MenuID)
		if err != nil {
			return mapLookupErr(err, ErrMenuNotFound)
		}

		res, err := factory.CreateReservation(booking, menuEntity, salon.CancellationDeadlineMinutes)
		if err != nil {
			if errors.Is(err, menu.ErrMenuInactive) || errors.Is(err, menu.ErrMenuOtherSalon) {
				return errs.Tag(err, ErrMenuNotFound)
			}
			return errs.Tag(err, ErrInvalidReservation)
		}

		if err := tx.Slots().MarkBooked(ctx, tx.DB(), s); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Tag(err, ErrSlotUnavailable)
			}
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}

		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindConflict) {
				return errs.Tag(err, ErrSlotUnavailable)
			}
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}

		if err := uc.enqueueNotification(ctx, tx, topicReservationCreated, id, res, now); err != nil {
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, booking.CustomerID, calculateIDHash(id), id); err != nil {
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}

		reservationID = id
		return nil
	})
	uc.metrics.ObserveCommit(uc.clock.Now().Sub(started))
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, booking.OperatorID, booking.Date.MonthStart())

	// Read-after-write: Get the complete reservation view from read store
	view, err := uc.reservationQueries.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, errs.Tag(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ensureEligible applies the rapid-cancellation lockout and the one-active-reservation rule.
func (uc *reservationCommandsImpl) ensureEligible(ctx context.Context, reads shared.CommandReads, customerID uuid.UUID, now time.Time) error {
	policy := shared.NewLockoutPolicy(uc.booking)
	history, err := reads.CancellationsSince(ctx, customerID, now.Add(-policy.Window))
	if err != nil {
		return errs.Tag(err, ErrDatabaseOperationFailed)
	}
	if e := policy.Evaluate(history, now); !e.CanCreate {
		return errs.Tag(&LockoutError{Until: *e.LockedUntil}, ErrLockedOut)
	}

	exists, err := reads.HasUpcomingReservation(ctx, customerID, slot.DateOf(now), slot.ClockOf(now))
	if err != nil {
		return errs.Tag(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return ErrActiveReservationExists
	}
	return nil
}

func (uc *reservationCommandsImpl) CancelByCustomer(ctx context.Context, customerID, reservationID uuid.UUID) (*queries.ReservationView, error) {
	return uc.transition(ctx, reservationID,
		func(res *reservation.Reservation) error {
			if err := res.EnsureOwnedBy(customerID); err != nil {
				return errs.Tag(err, ErrReservationAccess)
			}
			return nil
		},
		func(res *reservation.Reservation, now time.Time) error { return res.CancelByCustomer(now) },
		topicReservationCanceled,
	)
}

func (uc *reservationCommandsImpl) CancelByOperator(ctx context.Context, salonID, reservationID uuid.UUID) (*queries.ReservationView, error) {
	return uc.transition(ctx, reservationID, sameSalon(salonID),
		func(res *reservation.Reservation, now time.Time) error { return res.CancelByOperator(now) },
		topicReservationCanceled,
	)
}

func (uc *reservationCommandsImpl) Complete(ctx context.Context, salonID, reservationID uuid.UUID) (*queries.ReservationView, error) {
	return uc.transition(ctx, reservationID, sameSalon(salonID),
		func(res *reservation.Reservation, now time.Time) error { return res.Complete(now) },
		topicReservationCompleted,
	)
}

func (uc *reservationCommandsImpl) MarkNoShow(ctx context.Context, salonID, reservationID uuid.UUID) (*queries.ReservationView, error) {
	return uc.transition(ctx, reservationID, sameSalon(salonID),
		func(res *reservation.Reservation, now time.Time) error { return res.MarkNoShow(now) },
		topicReservationNoShow,
	)
}

func sameSalon(salonID uuid.UUID) func(*reservation.Reservation) error {
	return func(res *reservation.Reservation) error {
		if res.SalonID() != salonID {
			return ErrReservationNotFound
		}
		return nil
	}
}

// transition locks the reservation, applies one status change and frees the slot when the change releases it.
func (uc *reservationCommandsImpl) transition(
	ctx context.Context,
	reservationID uuid.UUID,
	authorize func(*reservation.Reservation) error,
	apply func(*reservation.Reservation, time.Time) error,
	topic string,
) (*queries.ReservationView, error) {
	ctx, cancel := uc.withMutationTimeout(ctx)
	defer cancel()

	snapshot, err := uc.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, mapLookupErr(err, ErrReservationNotFound)
	}
	salon, err := uc.uow.CommandReads().SalonByID(ctx, snapshot.SalonID)
	if err != nil {
		return nil, mapLookupErr(err, ErrSalonNotFound)
	}
	now := uc.clock.Now().In(salon.Location)

	var updated *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().LockForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			return mapLookupErr(err, ErrReservationNotFound)
		}
		if err := authorize(res); err != nil {
			return err
		}
		if err := apply(res, now); err != nil {
			return mapTransitionErr(err)
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Tag(err, ErrReservationNotReserved)
			}
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}
		if res.FreesSlot() {
			if err := tx.Slots().Free(ctx, tx.DB(), res.OperatorID(), res.Date(), res.Time()); err != nil {
				return errs.Tag(err, ErrDatabaseOperationFailed)
			}
		}
		if err := uc.enqueueNotification(ctx, tx, topic, res.ID(), res, now); err != nil {
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}

		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.FreesSlot() {
		uc.cache.Invalidate(ctx, updated.OperatorID(), updated.Date().MonthStart())
		if actor := updated.CanceledBy(); actor != nil {
			uc.metrics.ReservationCanceled(actor.String())
		}
	}

	view, err := uc.reservationQueries.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, errs.Tag(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *reservationCommandsImpl) withMutationTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.booking.MutationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.booking.MutationTimeout)
}

type reservationNotification struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Type          string    `json:"type"`
	CustomerID    uuid.UUID `json:"customer_id"`
	OperatorID    uuid.UUID `json:"operator_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
}

func (uc *reservationCommandsImpl) enqueueNotification(
	ctx context.Context,
	tx shared.Tx,
	topic string,
	reservationID uuid.UUID,
	res *reservation.Reservation,
	now time.Time,
) error {
	payload, err := json.Marshal(reservationNotification{
		ReservationID: reservationID,
		Type:          topic,
		CustomerID:    res.CustomerID(),
		OperatorID:    res.OperatorID(),
		Date:          res.Date().String(),
		Time:          res.Time().String(),
		Status:        res.Status().String(),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, now)
}

func mapLookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Tag(err, notFound)
	}
	return errs.Tag(err, ErrDatabaseOperationFailed)
}

func mapTransitionErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrDeadlinePassed):
		return errs.Tag(err, ErrCancelDeadlinePassed)
	case errors.Is(err, reservation.ErrNotReserved):
		return errs.Tag(err, ErrReservationNotReserved)
	default:
		return errs.Tag(err, ErrInvalidReservation)
	}
}

func resultLabel(err error) string {
	switch errs.ClassOf(err) {
	case errs.ClassValidation:
		return "invalid"
	case errs.ClassConflict:
		return "conflict"
	case errs.ClassNotFound:
		return "not_found"
	case errs.ClassForbidden:
		return "forbidden"
	default:
		return "error"
	}
}

func calculateRequestHash(req reqdto.CreateReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
