package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	computeSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/compute_schedule"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase ComputeScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ComputeScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/schedule
// Возвращает метаданные услуги и карту свободных слотов по дням окна отображения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем serviceId из URL
	serviceIDStr := vars["serviceId"]
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/schedule - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &computeSchedule.Request{
		ServiceID: serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, computeSchedule.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/schedule - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, computeSchedule.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/schedule - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("GET /services/{id}/schedule - Failed to compute schedule: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /services/{id}/schedule - Schedule computed successfully: service_id=%d, days_count=%d",
		serviceID, len(result.FreeSlots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
