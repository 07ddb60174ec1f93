package get_section_events

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/events/models"
)

type EventsService interface {
	GetSectionDayEvents(ctx context.Context, req *models.GetSectionEventsRequest) (*models.EventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
