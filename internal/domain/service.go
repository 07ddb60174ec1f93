package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// Service represents a bookable service
// Events are scoped to the service's section (ServiceTypeID); Begin/End
// narrow the business-hours window for this particular service
type Service struct {
	ID            int64
	ServiceTypeID int64
	Name          string

	StepMinutes     int
	Price           float64
	DurationMinutes int

	Begin types.TimeString
	End   types.TimeString
}
