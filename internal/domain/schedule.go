package domain

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BusinessHours is the daily window during which any scheduling activity
// (busy or free) is considered. Shared read-only across all days of a run
type BusinessHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// DayLengthMinutes returns the length of the business day in minutes
func (h BusinessHours) DayLengthMinutes() int {
	return h.Close.Sub(h.Open)
}

// BusyInterval is an occupied interval of one day, in minutes relative
// to the business-hours open
type BusyInterval struct {
	StartMinutes    int
	DurationMinutes int
}

// EndMinutes returns the interval end offset in minutes
func (b BusyInterval) EndMinutes() int {
	return b.StartMinutes + b.DurationMinutes
}

// FreeSlot is a free interval of one day, confined to the service time
// window, in minutes relative to the business-hours open
type FreeSlot struct {
	StartMinutes    int
	DurationMinutes int
}

// DayKey returns the free-slot map key ("d-0", "d-1", ... in chronological
// order) for the day with the given zero-based index
func DayKey(index int) string {
	return fmt.Sprintf("d-%d", index)
}
