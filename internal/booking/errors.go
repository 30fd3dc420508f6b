package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salon-reserve/internal/pkg/errs"
)

var (
	ErrValidation = errs.ErrValidation
	ErrTransient  = errs.ErrTransient
	ErrConflict   = errs.ErrConflict
	ErrNotFound   = errs.ErrNotFound
	ErrLockedOut  = errs.Classify("booking is temporarily locked after repeated cancellations", errs.ErrConflict)
)

var (
	ErrNoOperator        = errs.Classify("no operator selected", errs.ErrValidation)
	ErrDateUnavailable   = errs.Classify("date has no open slots", errs.ErrValidation)
	ErrTimeUnavailable   = errs.Classify("time is not available on the selected date", errs.ErrValidation)
	ErrIncompleteDraft   = errs.Classify("operator, date, time and menu are required", errs.ErrValidation)
	ErrStaleSelection    = errs.Classify("selected time is no longer available", errs.ErrConflict)
	ErrNotCancelable     = errs.Classify("reservation can no longer be canceled", errs.ErrConflict)
	ErrSubmitInFlight    = errs.New("a submission is already in flight")
	ErrNotConfirming     = errs.New("submission is not awaiting confirmation")
	ErrTickerRunning     = errs.New("ticker already started")
	ErrUnexpectedPayload = errs.Classify("unexpected backend response", errs.ErrTransient)
)

// LockedOutError reports when the customer may book again.
type LockedOutError struct {
	Until *time.Time
}

func (e *LockedOutError) Error() string {
	if e.Until == nil {
		return "booking locked"
	}
	return fmt.Sprintf("booking locked until %s", e.Until.Format(time.RFC3339))
}

func lockedOut(until *time.Time) error {
	return errs.Tag(&LockedOutError{Until: until}, ErrLockedOut)
}

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindTransient
	KindConflict
	KindNotFound
	KindLockedOut
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransient:
		return "transient"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindLockedOut:
		return "locked_out"
	default:
		return "unknown"
	}
}

// Retryable reports whether repeating the same call may succeed.
func (k Kind) Retryable() bool {
	return k == KindTransient
}

// Classify maps an error returned by this package onto the user-facing taxonomy.
// Timeouts and cancellations count as transient.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errs.Is(err, ErrLockedOut) {
		return KindLockedOut
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTransient
	}
	switch errs.ClassOf(err) {
	case errs.ClassValidation:
		return KindValidation
	case errs.ClassTransient:
		return KindTransient
	case errs.ClassConflict:
		return KindConflict
	case errs.ClassNotFound:
		return KindNotFound
	default:
		return KindUnknown
	}
}
