package compute_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// weeklyEvent повторяющееся событие: понедельник 14:00, 60 минут
func weeklyEvent() *domain.Event {
	return &domain.Event{
		ID:            30,
		SectionID:     1,
		Start:         time.Date(2010, 8, 2, 14, 0, 0, 0, time.UTC),
		End:           time.Date(9999, 2, 1, 0, 0, 0, 0, time.UTC),
		RecType:       "week_1___1#no",
		LengthSeconds: 3600,
	}
}

func TestResolveOccurrence_OrdinaryEventPassthrough(t *testing.T) {
	event := &domain.Event{
		ID:    5,
		Start: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 31, 13, 0, 0, 0, time.UTC),
	}

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	start, end, ok := resolveOccurrence(event, day, nil)

	require.True(t, ok)
	require.Equal(t, event.Start, start)
	require.Equal(t, event.End, end)
}

func TestResolveOccurrence_WeeklyMatchingDay(t *testing.T) {
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	start, end, ok := resolveOccurrence(weeklyEvent(), monday, nil)

	require.True(t, ok)
	require.Equal(t, time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC), end)
}

func TestResolveOccurrence_WeeklyNonMatchingDay(t *testing.T) {
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, tuesday.Weekday())

	_, _, ok := resolveOccurrence(weeklyEvent(), tuesday, nil)

	require.False(t, ok)
}

func TestResolveOccurrence_OverrideReplacesOccurrence(t *testing.T) {
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	override := &domain.Event{
		ID:       41,
		ParentID: 30,
		Start:    time.Date(2026, 8, 31, 16, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 8, 31, 17, 30, 0, 0, time.UTC),
	}

	start, end, ok := resolveOccurrence(weeklyEvent(), monday, []*domain.Event{override})

	require.True(t, ok)
	require.Equal(t, override.Start, start)
	require.Equal(t, override.End, end)
}

func TestResolveOccurrence_OverrideCancelsOccurrence(t *testing.T) {
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	cancel := &domain.Event{
		ID:       42,
		ParentID: 30,
		RecType:  domain.RecTypeCancelled,
		Start:    time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC),
	}

	_, _, ok := resolveOccurrence(weeklyEvent(), monday, []*domain.Event{cancel})

	require.False(t, ok)
}

func TestResolveOccurrence_FirstMatchingOverrideWins(t *testing.T) {
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	first := &domain.Event{
		ID:       43,
		ParentID: 30,
		Start:    time.Date(2026, 8, 31, 11, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}
	second := &domain.Event{
		ID:       44,
		ParentID: 30,
		RecType:  domain.RecTypeCancelled,
		Start:    time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC),
	}
	// Чужой override не должен влиять
	foreign := &domain.Event{
		ID:       45,
		ParentID: 99,
		RecType:  domain.RecTypeCancelled,
		Start:    time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC),
	}

	start, end, ok := resolveOccurrence(weeklyEvent(), monday, []*domain.Event{foreign, first, second})

	require.True(t, ok)
	require.Equal(t, first.Start, start)
	require.Equal(t, first.End, end)
}

func TestResolveOccurrence_DayAndYearKindsNotExpanded(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	for _, recType := range []string{"day_1___", "year_1___"} {
		event := weeklyEvent()
		event.RecType = recType

		_, _, ok := resolveOccurrence(event, day, nil)
		require.False(t, ok, "rec_type=%s", recType)
	}
}

func TestResolveOccurrence_MalformedTokenMeansNoOccurrence(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	event := weeklyEvent()
	event.RecType = "week_1___" // нет списка дней недели

	_, _, ok := resolveOccurrence(event, day, nil)
	require.False(t, ok)
}
