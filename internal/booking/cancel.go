package booking

import (
	"context"
	"sync"
	"time"

	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

// CancelFlow gates the cancel action and issues the single cancel call. The
// local check only hides the action; the server enforces the deadline again.
type CancelFlow struct {
	backend Backend
	slots   *SlotQuery
	clock   clock.Clock
	loc     *time.Location
	timeout time.Duration

	mu sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewCancelFlow(backend Backend, slots *SlotQuery, clk clock.Clock, loc *time.Location) *CancelFlow {
	return &CancelFlow{
		backend:  backend,
		slots:    slots,
		clock:    clk,
		loc:      loc,
		timeout:  DefaultMutationTimeout,
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

// CanCancel holds for reserved reservations strictly before
// start - cancellation_deadline_minutes (1440 when the record has none).
func (f *CancelFlow) CanCancel(r Reservation, now time.Time) bool {
	deadline := reservation.DeadlineOrDefault(r.CancellationDeadlineMinutes)
	return reservation.IsCancelable(r.Status, r.StartsAt(f.loc), deadline, now)
}

func (f *CancelFlow) Cancel(ctx context.Context, r Reservation) (Reservation, error) {
	if !f.CanCancel(r, f.clock.Now()) {
		return Reservation{}, ErrNotCancelable
	}

	f.mu.Lock()
	if _, busy := f.inFlight[r.ID]; busy {
		f.mu.Unlock()
		return Reservation{}, ErrSubmitInFlight
	}
	f.inFlight[r.ID] = struct{}{}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		delete(f.inFlight, r.ID)
		f.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	canceled, err := f.backend.CancelReservation(ctx, r.ID)
	if err != nil {
		return Reservation{}, errs.Wrap(asTransient(err), "cancel reservation")
	}
	f.slots.Invalidate(r.OperatorID, r.Date)
	return canceled, nil
}

// CheckRebook verifies before a rebooking flow starts that the menu still
// exists and that the customer has no upcoming reservation.
func CheckRebook(ctx context.Context, backend Backend, menuID uuid.UUID) error {
	if err := backend.RebookCheck(ctx, menuID); err != nil {
		return errs.Wrap(asTransient(err), "rebook check")
	}
	return nil
}
