package compute_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	// FindBaseEvents возвращает базовые события секции на день (event_pid = 0)
	FindBaseEvents(ctx context.Context, sectionID int64, day time.Time) ([]*domain.Event, error)
	// FindOverrideEvents возвращает события-исключения секции на день (event_pid > 0)
	FindOverrideEvents(ctx context.Context, sectionID int64, day time.Time) ([]*domain.Event, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
