package booking

import (
	"context"
	"sync"

	"salon-reserve/internal/domain/availability"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

type monthKey struct {
	operatorID uuid.UUID
	month      slot.Date
}

// SlotQuery fetches availability per (operator, month) and keeps the last
// snapshot of each until it is invalidated. Cached snapshots are re-derived
// against the clock on every read so passed times of today drop out.
type SlotQuery struct {
	backend Backend
	clock   clock.Clock

	mu    sync.Mutex
	cache map[monthKey]availability.Snapshot
}

func NewSlotQuery(backend Backend, clk clock.Clock) *SlotQuery {
	return &SlotQuery{
		backend: backend,
		clock:   clk,
		cache:   make(map[monthKey]availability.Snapshot),
	}
}

// FetchAvailability returns the open dates and times of the month containing
// anchor. A nil operator yields an empty snapshot and no error. On failure the
// snapshot is empty and the error is returned alongside it.
func (q *SlotQuery) FetchAvailability(ctx context.Context, operatorID uuid.UUID, anchor slot.Date) (availability.Snapshot, error) {
	if operatorID == uuid.Nil {
		return availability.Empty(), nil
	}
	key := monthKey{operatorID: operatorID, month: anchor.MonthStart()}

	q.mu.Lock()
	cached, ok := q.cache[key]
	q.mu.Unlock()
	if ok {
		return cached.Rederive(q.clock.Now()), nil
	}

	snap, err := q.backend.Availability(ctx, operatorID, key.month)
	if err != nil {
		if errs.ClassOf(err) == errs.ClassUnknown {
			err = errs.Mark(err, ErrTransient)
		}
		return availability.Empty(), errs.Wrapf(err, "fetch availability for %s", key.month.MonthString())
	}

	q.mu.Lock()
	q.cache[key] = snap
	q.mu.Unlock()
	return snap.Rederive(q.clock.Now()), nil
}

// Invalidate drops the cached month containing date.
func (q *SlotQuery) Invalidate(operatorID uuid.UUID, date slot.Date) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.cache, monthKey{operatorID: operatorID, month: date.MonthStart()})
}
