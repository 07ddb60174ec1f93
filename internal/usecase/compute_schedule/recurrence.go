package compute_schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// resolveOccurrence вычисляет эффективный интервал события на указанный день
// Возвращает ok=false, если вхождения в этот день нет
//
// - Обычное событие: интервал (Start, End) как есть; релевантность ко дню
//   обеспечивает источник данных
// - Недельная повторяемость: вхождение в день с совпадающим днем недели,
//   с применением первого подходящего override (замена или отмена)
// - Дневная и годовая повторяемость не разворачиваются: вхождений нет
// - Некорректный токен повторяемости: вхождения нет, запуск не прерывается
func resolveOccurrence(event *domain.Event, day time.Time, overrides []*domain.Event) (time.Time, time.Time, bool) {
	if !event.IsRecurring() {
		return event.Start, event.End, true
	}

	rule, err := domain.ParseRecType(event.RecType)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	switch rule.Kind {
	case domain.RecurrenceWeek:
		return resolveWeekly(event, rule, day, overrides)
	default:
		// day и year распознаются, но не разворачиваются
		return time.Time{}, time.Time{}, false
	}
}

// resolveWeekly вычисляет вхождение недельного события на день
// Якорное время суток берется из start_date события, длина вхождения -
// из event_length
func resolveWeekly(event *domain.Event, rule *domain.RecurrenceRule, day time.Time, overrides []*domain.Event) (time.Time, time.Time, bool) {
	if !rule.OccursOn(day.Weekday()) {
		return time.Time{}, time.Time{}, false
	}

	start := time.Date(
		day.Year(), day.Month(), day.Day(),
		event.Start.Hour(), event.Start.Minute(), event.Start.Second(), 0,
		day.Location(),
	)
	end := start.Add(event.Length())

	// Применяем первый override с совпадающим родителем; остальные игнорируются
	// (порядок задает источник данных)
	for _, override := range overrides {
		if override.ParentID != event.ID {
			continue
		}
		if override.IsCancellation() {
			return time.Time{}, time.Time{}, false
		}
		return override.Start, override.End, true
	}

	return start, end, true
}
