package availability

import "salon-reserve/internal/domain/slot"

// MonthWindow returns the first and last day of the month containing anchor.
func MonthWindow(anchor slot.Date) (from, to slot.Date) {
	return anchor.MonthStart(), anchor.MonthEnd()
}
