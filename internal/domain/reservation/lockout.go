package reservation

import (
	"slices"
	"time"
)

// CancellationRecord is one customer-initiated cancellation.
type CancellationRecord struct {
	CreatedAt  time.Time
	CanceledAt time.Time
}

type LockoutPolicy struct {
	Threshold   int
	RapidWithin time.Duration
	Window      time.Duration
}

type Eligibility struct {
	CanCreate   bool
	LockedUntil *time.Time
}

// Evaluate counts rapid cancellations (canceled within RapidWithin of creation)
// whose cancel time lies in (now-Window, now]. At Threshold or more the customer
// is locked until the Threshold-th most recent one leaves the window.
func (p LockoutPolicy) Evaluate(history []CancellationRecord, now time.Time) Eligibility {
	if p.Threshold <= 0 {
		return Eligibility{CanCreate: true}
	}
	windowStart := now.Add(-p.Window)

	var counted []time.Time
	for _, c := range history {
		if c.CanceledAt.Sub(c.CreatedAt) > p.RapidWithin {
			continue
		}
		if !c.CanceledAt.After(windowStart) || c.CanceledAt.After(now) {
			continue
		}
		counted = append(counted, c.CanceledAt)
	}
	if len(counted) < p.Threshold {
		return Eligibility{CanCreate: true}
	}

	slices.SortFunc(counted, func(a, b time.Time) int { return b.Compare(a) })
	until := counted[p.Threshold-1].Add(p.Window)
	return Eligibility{CanCreate: false, LockedUntil: &until}
}
