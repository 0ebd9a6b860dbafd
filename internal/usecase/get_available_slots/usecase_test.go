package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdko/salon-booking-service/internal/domain"
	scheduleRepo "github.com/avdko/salon-booking-service/internal/infra/storage/schedule"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

type mockBookingRepo struct {
	intervals map[int64][]timeutil.Interval
	err       error
}

func (m *mockBookingRepo) GetStaffDayIntervals(ctx context.Context, date time.Time) (map[int64][]timeutil.Interval, error) {
	return m.intervals, m.err
}

type mockStaffRepo struct {
	staff []domain.Staff
	err   error
}

func (m *mockStaffRepo) GetActive(ctx context.Context) ([]domain.Staff, error) {
	return m.staff, m.err
}

type mockScheduleRepo struct {
	config *domain.ScheduleConfig
	err    error
}

func (m *mockScheduleRepo) GetForWeekday(ctx context.Context, weekday int) (*domain.ScheduleConfig, error) {
	return m.config, m.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func mins(t *testing.T, s string) timeutil.Minutes {
	t.Helper()
	m, err := timeutil.ParseClock(s)
	require.NoError(t, err)
	return m
}

func openConfig(t *testing.T) *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		OpenMinute:             mins(t, "09:00"),
		CloseMinute:            mins(t, "12:00"),
		SlotGranularityMinutes: 30,
	}
}

func newTestUseCase(booking *mockBookingRepo, staff *mockStaffRepo, schedule *mockScheduleRepo, now time.Time) *UseCase {
	uc := NewUseCase(booking, staff, schedule, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_MarksFullyBookedSlotsDisabled(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	// Оба мастера заняты 10:00-10:30
	bookingRepo := &mockBookingRepo{intervals: map[int64][]timeutil.Interval{
		1: {{Start: mins(t, "10:00"), End: mins(t, "10:30")}},
		2: {{Start: mins(t, "10:00"), End: mins(t, "11:00")}},
	}}
	staffRepo := &mockStaffRepo{staff: []domain.Staff{{ID: 1, Active: true}, {ID: 2, Active: true}}}
	schedRepo := &mockScheduleRepo{config: openConfig(t)}

	uc := newTestUseCase(bookingRepo, staffRepo, schedRepo, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)

	byStart := make(map[string]Slot)
	for _, slot := range resp.Slots {
		byStart[slot.StartTime.String()] = slot
	}

	assert.True(t, byStart["10:00"].Disabled)
	assert.Equal(t, 0, byStart["10:00"].FreeStaff)

	// В 10:30 мастер 1 уже свободен
	assert.False(t, byStart["10:30"].Disabled)
	assert.Equal(t, 1, byStart["10:30"].FreeStaff)

	assert.False(t, byStart["09:00"].Disabled)
	assert.Equal(t, 2, byStart["09:00"].FreeStaff)
	assert.Equal(t, 2, byStart["09:00"].TotalStaff)
}

func TestExecute_ClosedDay(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	config := openConfig(t)
	config.Closed = true

	uc := newTestUseCase(
		&mockBookingRepo{},
		&mockStaffRepo{},
		&mockScheduleRepo{config: config},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoStaffAllSlotsDisabled(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{intervals: map[int64][]timeutil.Interval{}},
		&mockStaffRepo{staff: []domain.Staff{}},
		&mockScheduleRepo{config: openConfig(t)},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Disabled)
		assert.Equal(t, 0, slot.TotalStaff)
	}
}

func TestExecute_DefaultConfigWhenNotFound(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{intervals: map[int64][]timeutil.Interval{}},
		&mockStaffRepo{staff: []domain.Staff{{ID: 1, Active: true}}},
		&mockScheduleRepo{err: scheduleRepo.ErrConfigNotFound},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	// Дефолт: 09:00-19:00 с шагом 30 минут
	require.Len(t, resp.Slots, 20)
	assert.Equal(t, domain.DefaultOpenMinute, resp.Slots[0].StartTime)
}

func TestExecute_PastDate(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&mockBookingRepo{},
		&mockStaffRepo{},
		&mockScheduleRepo{config: openConfig(t)},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{Date: date})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	config := openConfig(t)
	config.AdvanceBookingDays = 14

	uc := newTestUseCase(
		&mockBookingRepo{},
		&mockStaffRepo{},
		&mockScheduleRepo{config: config},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{Date: date})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}
