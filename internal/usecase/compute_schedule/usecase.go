package compute_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	servicesRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/services"
)

// UseCase use case расчета свободных слотов услуги на окно отображения
type UseCase struct {
	serviceRepo  ServiceRepository
	eventRepo    EventRepository
	hours        domain.BusinessHours
	horizonWeeks int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// Рабочие часы и горизонт передаются явно: никакого глобального состояния
func NewUseCase(
	serviceRepo ServiceRepository,
	eventRepo EventRepository,
	hours domain.BusinessHours,
	horizonWeeks int,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:  serviceRepo,
		eventRepo:    eventRepo,
		hours:        hours,
		horizonWeeks: horizonWeeks,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчета расписания
// Ошибки чтения из источника данных прерывают весь расчет: частичный
// результат не возвращается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeSchedule: user=%d, service=%d", req.UserID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ComputeSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу с ее временным окном и метаданными
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("ComputeSchedule: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ComputeSchedule: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Планируем дни окна отображения
	now := uc.timeProvider.Now()
	days := planPeriod(now, uc.horizonWeeks)

	// 4. Окно услуги в минутах от открытия (от дня не зависит)
	window := computeServiceWindow(uc.hours, service.Begin, service.End)

	// 5. По каждому дню: события -> занятые интервалы -> свободные слоты
	// Дни независимы; состояние между итерациями не переносится
	freeSlots := make(map[string][]domain.FreeSlot, len(days))
	for i, day := range days {
		baseEvents, err := uc.eventRepo.FindBaseEvents(ctx, service.ServiceTypeID, day)
		if err != nil {
			uc.logger.Error("ComputeSchedule: failed to fetch events for section=%d, day=%s: %v",
				service.ServiceTypeID, day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to fetch events: %v", ErrInternal, err)
		}

		overrides, err := uc.eventRepo.FindOverrideEvents(ctx, service.ServiceTypeID, day)
		if err != nil {
			uc.logger.Error("ComputeSchedule: failed to fetch overrides for section=%d, day=%s: %v",
				service.ServiceTypeID, day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to fetch overrides: %v", ErrInternal, err)
		}

		busy := buildDayBusySet(day, uc.hours, baseEvents, overrides)

		// День без свободного времени присутствует в ответе с пустым списком
		freeSlots[domain.DayKey(i)] = invertBusySet(busy, window)
	}

	uc.logger.Info("ComputeSchedule: computed %d days for service=%d (section=%d)",
		len(days), req.ServiceID, service.ServiceTypeID)

	return &Response{
		ServiceTypeID:   service.ServiceTypeID,
		StepMinutes:     service.StepMinutes,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		FreeSlots:       freeSlots,
	}, nil
}
