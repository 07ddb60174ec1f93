package events

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/events/models"
)

// Service сервис для просмотра событий секции
// Используется менеджерами для диагностики расписания: возвращает сырые
// события дня до разворачивания повторяемости и инверсии
type Service struct {
	eventRepo EventRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(eventRepo EventRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// GetSectionDayEvents получает базовые события и исключения секции за день
func (s *Service) GetSectionDayEvents(ctx context.Context, req *models.GetSectionEventsRequest) (*models.EventListResponse, error) {
	s.logger.Info("GetSectionDayEvents: section=%d, date=%s, user=%d",
		req.SectionID, req.Date.Format(domain.DateFormat), req.UserID)

	if req.SectionID <= 0 {
		return nil, fmt.Errorf("%w: sectionID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	base, err := s.eventRepo.FindBaseEvents(ctx, req.SectionID, req.Date)
	if err != nil {
		s.logger.Error("GetSectionDayEvents: failed to fetch events for section=%d: %v", req.SectionID, err)
		return nil, fmt.Errorf("%w: GetSectionDayEvents - repository error: %v", ErrInternal, err)
	}

	overrides, err := s.eventRepo.FindOverrideEvents(ctx, req.SectionID, req.Date)
	if err != nil {
		s.logger.Error("GetSectionDayEvents: failed to fetch overrides for section=%d: %v", req.SectionID, err)
		return nil, fmt.Errorf("%w: GetSectionDayEvents - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSectionDayEvents: fetched %d events, %d overrides for section=%d",
		len(base), len(overrides), req.SectionID)

	return models.FromDomainEvents(base, overrides), nil
}
