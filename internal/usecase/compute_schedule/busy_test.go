package compute_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

var testHours = domain.BusinessHours{Open: "10:00", Close: "19:00"}

func ordinaryEvent(id int64, start, end time.Time) *domain.Event {
	return &domain.Event{ID: id, SectionID: 1, Start: start, End: end}
}

func TestBuildDayBusySet_MinuteOffsets(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	events := []*domain.Event{
		ordinaryEvent(1,
			time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 13, 0, 0, 0, time.UTC),
		),
	}

	busy := buildDayBusySet(day, testHours, events, nil)

	require.Equal(t, []domain.BusyInterval{{StartMinutes: 120, DurationMinutes: 60}}, busy)
}

func TestBuildDayBusySet_WeeklyEventOnMatchingDay(t *testing.T) {
	// Понедельник 14:00, 60 минут -> {240, 60} при открытии в 10:00
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	busy := buildDayBusySet(monday, testHours, []*domain.Event{weeklyEvent()}, nil)
	require.Equal(t, []domain.BusyInterval{{StartMinutes: 240, DurationMinutes: 60}}, busy)

	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	busy = buildDayBusySet(tuesday, testHours, []*domain.Event{weeklyEvent()}, nil)
	require.Empty(t, busy)
}

func TestBuildDayBusySet_ClipsToBusinessHours(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	events := []*domain.Event{
		// Начинается до открытия, заканчивается после закрытия
		ordinaryEvent(1,
			time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC),
		),
	}

	busy := buildDayBusySet(day, testHours, events, nil)

	require.Equal(t, []domain.BusyInterval{{StartMinutes: 0, DurationMinutes: 540}}, busy)
}

func TestBuildDayBusySet_EventOutsideHoursDropped(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	events := []*domain.Event{
		// Целиком до открытия
		ordinaryEvent(1,
			time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
		),
		// Целиком после закрытия
		ordinaryEvent(2,
			time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 22, 0, 0, 0, time.UTC),
		),
	}

	busy := buildDayBusySet(day, testHours, events, nil)

	require.Empty(t, busy)
}

func TestBuildDayBusySet_NumericSortByStart(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	// Начала 100 и 90 минут: лексикографически "100" < "90",
	// числовая сортировка обязана дать 90 раньше 100
	events := []*domain.Event{
		ordinaryEvent(1,
			time.Date(2026, 8, 31, 11, 40, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		),
		ordinaryEvent(2,
			time.Date(2026, 8, 31, 11, 30, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 11, 40, 0, 0, time.UTC),
		),
	}

	busy := buildDayBusySet(day, testHours, events, nil)

	require.Len(t, busy, 2)
	require.Equal(t, 90, busy[0].StartMinutes)
	require.Equal(t, 100, busy[1].StartMinutes)
}
