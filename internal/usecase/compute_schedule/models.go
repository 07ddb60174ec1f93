package compute_schedule

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// Request модель запроса на расчет расписания свободных слотов
type Request struct {
	UserID    int64 // ID пользователя (для логирования, не влияет на результат)
	ServiceID int64 // ID услуги
}

// Response модель ответа: метаданные услуги и свободные слоты по дням
type Response struct {
	ServiceTypeID   int64   // ID типа услуги (секция событий)
	StepMinutes     int     // Шаг бронирования
	Price           float64 // Цена услуги
	DurationMinutes int     // Длительность услуги

	// FreeSlots отображение "d-<n>" -> свободные интервалы дня
	// в минутах от открытия рабочего дня
	FreeSlots map[string][]domain.FreeSlot
}
