package get_section_events

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/events/models"
)

const (
	msgInvalidSectionID = "некорректный ID секции"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sections/{sectionId}/events
// Query params: date (required, YYYY-MM-DD)
// Возвращает сырые события секции за день: базовые и исключения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем sectionId из URL
	sectionIDStr := vars["sectionId"]
	sectionID, err := strconv.ParseInt(sectionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /sections/{id}/events - Invalid section ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectionID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /sections/{id}/events - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /sections/{id}/events - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.GetSectionDayEvents(r.Context(), &models.GetSectionEventsRequest{
		UserID:    userID,
		SectionID: sectionID,
		Date:      date,
	})
	if err != nil {
		h.logger.Error("GET /sections/{id}/events - Failed to get events: section_id=%d, error=%v",
			sectionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sections/{id}/events - Events retrieved successfully: section_id=%d, events_count=%d",
		sectionID, len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, result)
}
