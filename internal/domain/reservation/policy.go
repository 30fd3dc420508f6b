package reservation

import "time"

const DefaultCancelDeadlineMinutes = 1440

func DeadlineOrDefault(minutes *int) int {
	if minutes == nil || *minutes < 0 {
		return DefaultCancelDeadlineMinutes
	}
	return *minutes
}

// CancelDeadline is the last instant (exclusive) at which a customer may cancel.
func CancelDeadline(startsAt time.Time, deadlineMinutes int) time.Time {
	return startsAt.Add(-time.Duration(deadlineMinutes) * time.Minute)
}

// IsCancelable holds only for reserved reservations strictly before the deadline.
func IsCancelable(status Status, startsAt time.Time, deadlineMinutes int, now time.Time) bool {
	if status != StatusReserved {
		return false
	}
	return now.Before(CancelDeadline(startsAt, deadlineMinutes))
}
