package get_schedule

import (
	computeSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/compute_schedule"
)

// ScheduleResponse HTTP response model
// freeSlots хранит интервалы по ключам дней "d-0", "d-1", ... в минутах
// от открытия рабочего дня
type ScheduleResponse struct {
	ServiceType int64                 `json:"service_type"`
	Step        int                   `json:"step"`
	Price       float64               `json:"price"`
	Duration    int                   `json:"duration"`
	FreeSlots   map[string][]FreeSlot `json:"freeSlots"`
}

// FreeSlot модель свободного интервала
type FreeSlot struct {
	Start    int `json:"start"`
	Duration int `json:"duration"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeSchedule.Response) *ScheduleResponse {
	freeSlots := make(map[string][]FreeSlot, len(resp.FreeSlots))
	for day, slots := range resp.FreeSlots {
		daySlots := make([]FreeSlot, len(slots))
		for i, slot := range slots {
			daySlots[i] = FreeSlot{
				Start:    slot.StartMinutes,
				Duration: slot.DurationMinutes,
			}
		}
		freeSlots[day] = daySlots
	}

	return &ScheduleResponse{
		ServiceType: resp.ServiceTypeID,
		Step:        resp.StepMinutes,
		Price:       resp.Price,
		Duration:    resp.DurationMinutes,
		FreeSlots:   freeSlots,
	}
}
