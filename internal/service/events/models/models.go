package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// GetSectionEventsRequest запрос на получение событий секции за день
type GetSectionEventsRequest struct {
	UserID    int64     // ID пользователя (для логирования)
	SectionID int64     // ID секции
	Date      time.Time // День, за который запрашиваются события
}

// EventResponse модель события в ответе сервиса
type EventResponse struct {
	ID            int64  `json:"id"`
	SectionID     int64  `json:"sectionId"`
	Name          string `json:"name"`
	StatusID      int64  `json:"statusId"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	RecType       string `json:"recType,omitempty"`
	LengthSeconds int64  `json:"lengthSeconds,omitempty"`
	ParentID      int64  `json:"parentId,omitempty"`
}

// EventListResponse список событий секции за день
type EventListResponse struct {
	Events    []EventResponse `json:"events"`
	Overrides []EventResponse `json:"overrides"`
}

const dateTimeFormat = "2006-01-02 15:04:05"

// FromDomainEvent конвертирует доменное событие в модель ответа
func FromDomainEvent(event *domain.Event) EventResponse {
	return EventResponse{
		ID:            event.ID,
		SectionID:     event.SectionID,
		Name:          event.Name,
		StatusID:      event.StatusID,
		StartDate:     event.Start.Format(dateTimeFormat),
		EndDate:       event.End.Format(dateTimeFormat),
		RecType:       event.RecType,
		LengthSeconds: event.LengthSeconds,
		ParentID:      event.ParentID,
	}
}

// FromDomainEvents конвертирует списки базовых событий и исключений
func FromDomainEvents(base, overrides []*domain.Event) *EventListResponse {
	resp := &EventListResponse{
		Events:    make([]EventResponse, len(base)),
		Overrides: make([]EventResponse, len(overrides)),
	}
	for i, event := range base {
		resp.Events[i] = FromDomainEvent(event)
	}
	for i, event := range overrides {
		resp.Overrides[i] = FromDomainEvent(event)
	}
	return resp
}
