package booking

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseConfirming
	PhaseSubmitting
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseConfirming:
		return "confirming"
	case PhaseSubmitting:
		return "submitting"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Draft is what the customer chose besides the calendar selection.
type Draft struct {
	MenuID        uuid.UUID
	MenuName      string
	TotalPrice    int64
	GelRemoval    bool
	OtherRequests string
}

// Summary is shown for review before anything is sent.
type Summary struct {
	OperatorID    uuid.UUID
	MenuName      string
	Date          slot.Date
	Time          slot.TimeOfDay
	TotalPrice    int64
	GelRemoval    bool
	OtherRequests string
}

// Submission drives Idle -> Confirming -> Submitting -> Done | Failed. One
// confirmation reaches the backend at most once: Submit only leaves
// Confirming under the lock, and the idempotency key is fixed when the
// confirmation opens so a retried commit is deduplicated server-side.
type Submission struct {
	backend  Backend
	calendar *Calendar
	slots    *SlotQuery
	timeout  time.Duration

	mu      sync.Mutex
	phase   Phase
	summary Summary
	pending CreateRequest
	key     uuid.UUID
	result  Reservation
	err     error
}

func NewSubmission(backend Backend, calendar *Calendar, slots *SlotQuery) *Submission {
	return &Submission{
		backend:  backend,
		calendar: calendar,
		slots:    slots,
		timeout:  DefaultMutationTimeout,
		phase:    PhaseIdle,
	}
}

// WithTimeout overrides the commit timeout.
func (s *Submission) WithTimeout(d time.Duration) *Submission {
	s.timeout = d
	return s
}

// Open validates the draft against the current calendar selection and moves
// to Confirming. Nothing is sent to the backend.
func (s *Submission) Open(d Draft) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseSubmitting {
		return Summary{}, ErrSubmitInFlight
	}

	sel, ok := s.calendar.Selection()
	if !ok {
		if s.calendar.State() == StateTimeSelected {
			return Summary{}, ErrStaleSelection
		}
		return Summary{}, ErrIncompleteDraft
	}
	if d.MenuID == uuid.Nil {
		return Summary{}, ErrIncompleteDraft
	}
	if utf8.RuneCountInString(d.OtherRequests) > reservation.MaxOtherRequestsLength {
		return Summary{}, errs.Tag(errs.Newf("other requests exceed %d characters", reservation.MaxOtherRequestsLength), ErrValidation)
	}

	s.summary = Summary{
		OperatorID:    sel.OperatorID,
		MenuName:      d.MenuName,
		Date:          sel.Date,
		Time:          sel.Time,
		TotalPrice:    d.TotalPrice,
		GelRemoval:    d.GelRemoval,
		OtherRequests: d.OtherRequests,
	}
	s.pending = CreateRequest{
		OperatorID:    sel.OperatorID,
		MenuID:        d.MenuID,
		Date:          sel.Date,
		Time:          sel.Time,
		GelRemoval:    d.GelRemoval,
		OtherRequests: d.OtherRequests,
	}
	s.key = uuid.New()
	s.err = nil
	s.result = Reservation{}
	s.phase = PhaseConfirming
	return s.summary, nil
}

// Dismiss closes the confirmation without side effects; the calendar keeps
// its selection.
func (s *Submission) Dismiss() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseSubmitting {
		return ErrSubmitInFlight
	}
	s.phase = PhaseIdle
	s.err = nil
	return nil
}

// Retry reopens a failed transient submission with the same idempotency key.
func (s *Submission) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseFailed || !Classify(s.err).Retryable() {
		return ErrNotConfirming
	}
	s.phase = PhaseConfirming
	s.err = nil
	return nil
}

// Submit checks the booking lockout and then issues exactly one commit.
// A concurrent or repeated call returns ErrSubmitInFlight or
// ErrNotConfirming without touching the backend.
func (s *Submission) Submit(ctx context.Context) (Reservation, error) {
	s.mu.Lock()
	switch s.phase {
	case PhaseSubmitting:
		s.mu.Unlock()
		return Reservation{}, ErrSubmitInFlight
	case PhaseConfirming:
	default:
		s.mu.Unlock()
		return Reservation{}, ErrNotConfirming
	}
	s.phase = PhaseSubmitting
	req, key := s.pending, s.key
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.commit(ctx, key, req)
	if err != nil {
		switch Classify(err) {
		case KindConflict, KindLockedOut:
			// best effort; the rejection is what the caller needs to see
			_ = s.calendar.Refresh(ctx)
		}
		s.finish(PhaseFailed, Reservation{}, err)
		return Reservation{}, err
	}

	s.slots.Invalidate(req.OperatorID, req.Date)
	s.calendar.ClearSelection()
	s.finish(PhaseDone, res, nil)
	return res, nil
}

func (s *Submission) commit(ctx context.Context, key uuid.UUID, req CreateRequest) (Reservation, error) {
	eligibility, err := s.backend.Eligibility(ctx)
	if err != nil {
		return Reservation{}, errs.Wrap(asTransient(err), "check booking eligibility")
	}
	if !eligibility.CanCreate {
		return Reservation{}, lockedOut(eligibility.LockedUntil)
	}

	res, err := s.backend.CreateReservation(ctx, key, req)
	if err != nil {
		return Reservation{}, errs.Wrap(asTransient(err), "create reservation")
	}
	return res, nil
}

func (s *Submission) finish(phase Phase, res Reservation, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
	s.result = res
	s.err = err
}

func (s *Submission) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Summary is the summary under review, valid from Confirming onwards.
func (s *Submission) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

func (s *Submission) Result() (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.err
}

// asTransient marks unclassified failures as retryable.
func asTransient(err error) error {
	if errs.ClassOf(err) == errs.ClassUnknown && !errs.Is(err, ErrLockedOut) {
		return errs.Mark(err, ErrTransient)
	}
	return err
}
