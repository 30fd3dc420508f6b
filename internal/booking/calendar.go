package booking

import (
	"context"
	"sync"

	"salon-reserve/internal/domain/availability"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/pkg/clock"

	"github.com/google/uuid"
)

type State int

const (
	StateNoOperator State = iota
	StateOperatorSelected
	StateReady
	StateDateSelected
	StateTimeSelected
)

func (s State) String() string {
	switch s {
	case StateNoOperator:
		return "no_operator"
	case StateOperatorSelected:
		return "operator_selected"
	case StateReady:
		return "ready"
	case StateDateSelected:
		return "date_selected"
	case StateTimeSelected:
		return "time_selected"
	default:
		return "unknown"
	}
}

// Selection is a complete (operator, date, time) choice.
type Selection struct {
	OperatorID uuid.UUID
	Date       slot.Date
	Time       slot.TimeOfDay
}

// Calendar tracks the operator, visible month and the selected date and time.
// Every transition re-validates the selection against the latest snapshot; a
// selection that the snapshot no longer contains is cleared.
type Calendar struct {
	slots *SlotQuery
	clock clock.Clock

	mu         sync.Mutex
	state      State
	operatorID uuid.UUID
	month      slot.Date
	snapshot   availability.Snapshot
	date       slot.Date
	time       slot.TimeOfDay
	hasDate    bool
	hasTime    bool
	err        error
	// generation discards fetch results that finished after a newer transition.
	generation uint64
}

// NewCalendar starts with no operator on the current month. clk should report
// salon-local time.
func NewCalendar(slots *SlotQuery, clk clock.Clock) *Calendar {
	return &Calendar{
		slots:    slots,
		clock:    clk,
		state:    StateNoOperator,
		month:    slot.DateOf(clk.Now()).MonthStart(),
		snapshot: availability.Empty(),
	}
}

// SelectOperator switches operators, drops the selection and fetches the
// visible month. uuid.Nil returns the calendar to NoOperator.
func (c *Calendar) SelectOperator(ctx context.Context, operatorID uuid.UUID) error {
	c.mu.Lock()
	c.generation++
	c.clearSelectionLocked()
	c.err = nil
	c.snapshot = availability.Empty()
	c.operatorID = operatorID
	if operatorID == uuid.Nil {
		c.state = StateNoOperator
		c.mu.Unlock()
		return nil
	}
	c.state = StateOperatorSelected
	gen, month := c.generation, c.month
	c.mu.Unlock()

	return c.load(ctx, gen, operatorID, month)
}

// ChangeMonth moves the visible month and refetches it for the current operator.
func (c *Calendar) ChangeMonth(ctx context.Context, anchor slot.Date) error {
	c.mu.Lock()
	c.generation++
	c.month = anchor.MonthStart()
	if c.operatorID == uuid.Nil {
		c.mu.Unlock()
		return nil
	}
	c.state = StateOperatorSelected
	gen, operatorID, month := c.generation, c.operatorID, c.month
	c.mu.Unlock()

	return c.load(ctx, gen, operatorID, month)
}

// Refresh discards the cached month and refetches it, keeping the selection
// only when it is still open.
func (c *Calendar) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.operatorID == uuid.Nil {
		c.mu.Unlock()
		return nil
	}
	c.generation++
	gen, operatorID, month := c.generation, c.operatorID, c.month
	c.mu.Unlock()

	c.slots.Invalidate(operatorID, month)
	return c.load(ctx, gen, operatorID, month)
}

func (c *Calendar) load(ctx context.Context, gen uint64, operatorID uuid.UUID, month slot.Date) error {
	snap, err := c.slots.FetchAvailability(ctx, operatorID, month)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return err
	}
	c.snapshot = snap
	c.err = err
	c.reconcileLocked()
	return err
}

// Tick re-derives the snapshot against the clock so times that just passed
// stop being selectable.
func (c *Calendar) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.operatorID == uuid.Nil || c.state == StateOperatorSelected {
		return
	}
	c.snapshot = c.snapshot.Rederive(c.clock.Now())
	c.reconcileLocked()
}

func (c *Calendar) reconcileLocked() {
	if c.hasDate && !c.selectableLocked(c.date) {
		c.clearSelectionLocked()
	}
	if c.hasTime && !c.snapshot.Contains(c.date, c.time) {
		c.hasTime = false
		c.time = slot.TimeOfDay{}
	}
	c.state = c.derivedStateLocked()
}

func (c *Calendar) derivedStateLocked() State {
	switch {
	case c.operatorID == uuid.Nil:
		return StateNoOperator
	case c.hasTime:
		return StateTimeSelected
	case c.hasDate:
		return StateDateSelected
	default:
		return StateReady
	}
}

// IsDateSelectable is false for dates before today and dates without open slots.
func (c *Calendar) IsDateSelectable(d slot.Date) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectableLocked(d)
}

func (c *Calendar) selectableLocked(d slot.Date) bool {
	if d.Before(slot.DateOf(c.clock.Now())) {
		return false
	}
	return c.snapshot.HasDate(d)
}

// SelectDate picks a date and clears any selected time.
func (c *Calendar) SelectDate(d slot.Date) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.operatorID == uuid.Nil {
		return ErrNoOperator
	}
	if c.state == StateOperatorSelected || !c.selectableLocked(d) {
		return ErrDateUnavailable
	}
	c.date = d
	c.hasDate = true
	c.hasTime = false
	c.time = slot.TimeOfDay{}
	c.state = StateDateSelected
	return nil
}

// SelectTime picks one of the open times of the selected date.
func (c *Calendar) SelectTime(t slot.TimeOfDay) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.operatorID == uuid.Nil {
		return ErrNoOperator
	}
	if !c.hasDate {
		return ErrDateUnavailable
	}
	if !c.snapshot.Contains(c.date, t) {
		return ErrTimeUnavailable
	}
	c.time = t
	c.hasTime = true
	c.state = StateTimeSelected
	return nil
}

func (c *Calendar) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearSelectionLocked()
	c.state = c.derivedStateLocked()
}

func (c *Calendar) clearSelectionLocked() {
	c.date = slot.Date{}
	c.time = slot.TimeOfDay{}
	c.hasDate = false
	c.hasTime = false
}

// CanConfirm holds only when operator, date and time are selected and the time
// is still open in the last snapshot as of now.
func (c *Calendar) CanConfirm() bool {
	_, ok := c.Selection()
	return ok
}

// Selection returns the current choice when it is complete and still open.
func (c *Calendar) Selection() (Selection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateTimeSelected || !c.hasDate || !c.hasTime {
		return Selection{}, false
	}
	if !c.snapshot.Rederive(c.clock.Now()).Contains(c.date, c.time) {
		return Selection{}, false
	}
	return Selection{OperatorID: c.operatorID, Date: c.date, Time: c.time}, true
}

func (c *Calendar) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Calendar) OperatorID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.operatorID
}

func (c *Calendar) Month() slot.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.month
}

// Dates lists the selectable dates of the visible month.
func (c *Calendar) Dates() []slot.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.Dates()
}

// Times lists the open times of the selected date.
func (c *Calendar) Times() []slot.TimeOfDay {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasDate {
		return nil
	}
	return c.snapshot.Times(c.date)
}

// ErrorState is the error of the last fetch, nil once a fetch succeeds.
func (c *Calendar) ErrorState() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
