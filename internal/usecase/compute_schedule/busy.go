package compute_schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// buildDayBusySet преобразует события дня в отсортированный список занятых
// интервалов в минутах от открытия рабочего дня
//
// Каждое событие разрешается через resolveOccurrence; вхождение обрезается
// рабочими часами дня. События без вхождения интервала не дают; события,
// исчезающие после обрезки (целиком вне рабочих часов), пропускаются
func buildDayBusySet(day time.Time, hours domain.BusinessHours, baseEvents, overrides []*domain.Event) []domain.BusyInterval {
	dayStart := hours.Open.At(day)
	dayEnd := hours.Close.At(day)

	busy := make([]domain.BusyInterval, 0, len(baseEvents))

	for _, event := range baseEvents {
		start, end, ok := resolveOccurrence(event, day, overrides)
		if !ok {
			continue
		}

		// Ограничиваем интервал рабочими часами
		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}
		if !end.After(start) {
			continue
		}

		busy = append(busy, domain.BusyInterval{
			StartMinutes:    int(start.Sub(dayStart) / time.Minute),
			DurationMinutes: int(end.Sub(start) / time.Minute),
		})
	}

	// Числовая сортировка по началу; при равных началах сохраняется
	// порядок источника
	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].StartMinutes < busy[j].StartMinutes
	})

	return busy
}
