package compute_schedule

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// serviceWindow окно доступности услуги в минутах от открытия рабочего дня
// Вычисляется один раз на запуск: от дня оно не зависит
type serviceWindow struct {
	dayLengthMinutes int
	startMinutes     int
	endMinutes       int
}

// computeServiceWindow пересекает временное окно услуги с рабочими часами
// Если окно услуги лежит вне рабочих часов или begin позже end, получается
// пустое окно: свободных слотов не будет ни в один день (это не ошибка)
func computeServiceWindow(hours domain.BusinessHours, begin, end types.TimeString) serviceWindow {
	if begin.IsBefore(hours.Open) {
		begin = hours.Open
	}
	if end.IsAfter(hours.Close) {
		end = hours.Close
	}

	return serviceWindow{
		dayLengthMinutes: hours.DayLengthMinutes(),
		startMinutes:     begin.Sub(hours.Open),
		endMinutes:       end.Sub(hours.Open),
	}
}

// invertBusySet превращает отсортированный список занятых интервалов в
// свободные промежутки полного рабочего дня и обрезает их окном услуги
//
// Границы промежутков: 0, затем края занятых интервалов по порядку, затем
// конец рабочего дня. Занятые интервалы перед инверсией не сливаются,
// поэтому при пересекающихся событиях кандидат может получиться с
// отрицательной длительностью - такие отбрасываются
func invertBusySet(busy []domain.BusyInterval, window serviceWindow) []domain.FreeSlot {
	free := make([]domain.FreeSlot, 0, len(busy)+1)

	gapStart := 0
	for i := 0; i <= len(busy); i++ {
		gapEnd := window.dayLengthMinutes
		if i < len(busy) {
			gapEnd = busy[i].StartMinutes
		}

		if slot, ok := clampGap(gapStart, gapEnd, window); ok {
			free = append(free, slot)
		}

		if i < len(busy) {
			gapStart = busy[i].EndMinutes()
		}
	}

	return free
}

// clampGap обрезает промежуток-кандидат окном услуги
// Промежутки без пересечения с окном и промежутки неположительной
// длительности отбрасываются
func clampGap(start, end int, window serviceWindow) (domain.FreeSlot, bool) {
	if end <= window.startMinutes || start >= window.endMinutes {
		return domain.FreeSlot{}, false
	}

	if start < window.startMinutes {
		start = window.startMinutes
	}
	if end > window.endMinutes {
		end = window.endMinutes
	}

	if end <= start {
		return domain.FreeSlot{}, false
	}

	return domain.FreeSlot{
		StartMinutes:    start,
		DurationMinutes: end - start,
	}, true
}
