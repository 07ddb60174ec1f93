package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	FindBaseEvents(ctx context.Context, sectionID int64, day time.Time) ([]*domain.Event, error)
	FindOverrideEvents(ctx context.Context, sectionID int64, day time.Time) ([]*domain.Event, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
