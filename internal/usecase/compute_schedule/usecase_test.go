package compute_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	servicesRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/services"
)

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

// fakeEventRepo отдает общие события на каждый день плюс события,
// привязанные к конкретной дате
type fakeEventRepo struct {
	everyDay  []*domain.Event
	base      map[string][]*domain.Event
	overrides map[string][]*domain.Event

	baseErr     error
	overrideErr error
}

func (f *fakeEventRepo) FindBaseEvents(_ context.Context, _ int64, day time.Time) ([]*domain.Event, error) {
	if f.baseErr != nil {
		return nil, f.baseErr
	}
	events := append([]*domain.Event{}, f.everyDay...)
	return append(events, f.base[day.Format(domain.DateFormat)]...), nil
}

func (f *fakeEventRepo) FindOverrideEvents(_ context.Context, _ int64, day time.Time) ([]*domain.Event, error) {
	if f.overrideErr != nil {
		return nil, f.overrideErr
	}
	return f.overrides[day.Format(domain.DateFormat)], nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testService() *domain.Service {
	return &domain.Service{
		ID:              7,
		ServiceTypeID:   1,
		Name:            "Massage",
		StepMinutes:     30,
		Price:           1500,
		DurationMinutes: 60,
		Begin:           "10:00",
		End:             "19:00",
	}
}

func newTestUseCase(serviceRepo ServiceRepository, eventRepo EventRepository, now time.Time) *UseCase {
	uc := NewUseCase(serviceRepo, eventRepo, testHours, 1, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_EmptyCalendarGivesFullWindowEveryDay(t *testing.T) {
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeServiceRepo{service: testService()},
		&fakeEventRepo{},
		monday,
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7})

	require.NoError(t, err)
	require.Equal(t, int64(1), resp.ServiceTypeID)
	require.Equal(t, 30, resp.StepMinutes)
	require.Equal(t, 1500.0, resp.Price)
	require.Equal(t, 60, resp.DurationMinutes)

	// Понедельник с горизонтом в одну неделю: 13 дней, d-0..d-12
	require.Len(t, resp.FreeSlots, 13)
	for i := 0; i < 13; i++ {
		key := domain.DayKey(i)
		require.Contains(t, resp.FreeSlots, key)
		require.Equal(t, []domain.FreeSlot{{StartMinutes: 0, DurationMinutes: 540}}, resp.FreeSlots[key])
	}
}

func TestExecute_MixedEvents(t *testing.T) {
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	eventRepo := &fakeEventRepo{
		// Недельное событие: понедельник 14:00-15:00, возвращается на
		// каждый день (источник отдает идущие события по event_length)
		everyDay: []*domain.Event{weeklyEvent()},
		base: map[string][]*domain.Event{
			"2026-08-31": {
				ordinaryEvent(5,
					time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
					time.Date(2026, 8, 31, 13, 0, 0, 0, time.UTC),
				),
			},
		},
	}
	uc := newTestUseCase(&fakeServiceRepo{service: testService()}, eventRepo, monday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7})
	require.NoError(t, err)

	// d-0: понедельник с обычным событием 12:00-13:00 и недельным 14:00-15:00
	require.Equal(t, []domain.FreeSlot{
		{StartMinutes: 0, DurationMinutes: 120},
		{StartMinutes: 180, DurationMinutes: 60},
		{StartMinutes: 300, DurationMinutes: 240},
	}, resp.FreeSlots["d-0"])

	// d-7: следующий понедельник, только недельное событие
	require.Equal(t, []domain.FreeSlot{
		{StartMinutes: 0, DurationMinutes: 240},
		{StartMinutes: 300, DurationMinutes: 240},
	}, resp.FreeSlots["d-7"])

	// d-1: вторник без событий
	require.Equal(t, []domain.FreeSlot{{StartMinutes: 0, DurationMinutes: 540}}, resp.FreeSlots["d-1"])
}

func TestExecute_CancellingOverrideRemovesBusyInterval(t *testing.T) {
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	eventRepo := &fakeEventRepo{
		everyDay: []*domain.Event{weeklyEvent()},
		overrides: map[string][]*domain.Event{
			"2026-08-31": {
				{
					ID:       42,
					ParentID: 30,
					RecType:  domain.RecTypeCancelled,
					Start:    time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC),
				},
			},
		},
	}
	uc := newTestUseCase(&fakeServiceRepo{service: testService()}, eventRepo, monday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7})
	require.NoError(t, err)

	// Отмененное вхождение не делит день: полное окно без разрыва
	require.Equal(t, []domain.FreeSlot{{StartMinutes: 0, DurationMinutes: 540}}, resp.FreeSlots["d-0"])

	// Следующий понедельник отмена не затрагивает
	require.Equal(t, []domain.FreeSlot{
		{StartMinutes: 0, DurationMinutes: 240},
		{StartMinutes: 300, DurationMinutes: 240},
	}, resp.FreeSlots["d-7"])
}

func TestExecute_FullyBookedDayPresentWithEmptySlice(t *testing.T) {
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	eventRepo := &fakeEventRepo{
		base: map[string][]*domain.Event{
			"2026-08-31": {
				ordinaryEvent(5,
					time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
					time.Date(2026, 8, 31, 19, 0, 0, 0, time.UTC),
				),
			},
		},
	}
	uc := newTestUseCase(&fakeServiceRepo{service: testService()}, eventRepo, monday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7})
	require.NoError(t, err)

	require.Contains(t, resp.FreeSlots, "d-0")
	require.Empty(t, resp.FreeSlots["d-0"])
}

func TestExecute_Idempotent(t *testing.T) {
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	eventRepo := &fakeEventRepo{everyDay: []*domain.Event{weeklyEvent()}}

	first := newTestUseCase(&fakeServiceRepo{service: testService()}, eventRepo, monday)
	second := newTestUseCase(&fakeServiceRepo{service: testService()}, eventRepo, monday)

	resp1, err := first.Execute(context.Background(), &Request{ServiceID: 7})
	require.NoError(t, err)
	resp2, err := second.Execute(context.Background(), &Request{ServiceID: 7})
	require.NoError(t, err)

	require.Equal(t, resp1, resp2)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeServiceRepo{err: servicesRepo.ErrServiceNotFound},
		&fakeEventRepo{},
		time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 999})

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_FetchErrorAbortsComputation(t *testing.T) {
	repoErr := errors.New("connection refused")
	uc := newTestUseCase(
		&fakeServiceRepo{service: testService()},
		&fakeEventRepo{baseErr: repoErr},
		time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7})

	require.Nil(t, resp, "частичный результат не возвращается")
	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidServiceID(t *testing.T) {
	uc := newTestUseCase(
		&fakeServiceRepo{service: testService()},
		&fakeEventRepo{},
		time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0})

	require.ErrorIs(t, err, ErrInvalidInput)
}
