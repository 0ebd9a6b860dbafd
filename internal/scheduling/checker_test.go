package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

func clock(t *testing.T, s string) timeutil.Minutes {
	t.Helper()
	m, err := timeutil.ParseClock(s)
	require.NoError(t, err)
	return m
}

func interval(t *testing.T, start, end string) timeutil.Interval {
	t.Helper()
	return timeutil.Interval{Start: clock(t, start), End: clock(t, end)}
}

func staffPool(ids ...int64) []domain.Staff {
	pool := make([]domain.Staff, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, domain.Staff{ID: id, Active: true})
	}
	return pool
}

func TestChecker_ScanSlots(t *testing.T) {
	checker := NewChecker()
	pool := staffPool(1, 2)

	// Мастер 1 занят 10:00-11:00, мастер 2 свободен весь день
	busy := StaffCalendar{
		1: {interval(t, "10:00", "11:00")},
	}

	slots := checker.ScanSlots(pool, busy, 30, clock(t, "09:00"), clock(t, "12:00"))
	require.Len(t, slots, 6)

	assert.Equal(t, clock(t, "09:00"), slots[0].Start)
	assert.Equal(t, 0, slots[0].BusyStaff)
	assert.Equal(t, 0, slots[1].BusyStaff) // 09:30
	assert.Equal(t, 1, slots[2].BusyStaff) // 10:00
	assert.Equal(t, 1, slots[3].BusyStaff) // 10:30
	assert.Equal(t, 0, slots[4].BusyStaff) // 11:00 - интервал полуоткрытый
	assert.Equal(t, 0, slots[5].BusyStaff) // 11:30
}

func TestChecker_ScanSlots_DefaultGranularity(t *testing.T) {
	checker := NewChecker()

	slots := checker.ScanSlots(staffPool(1), StaffCalendar{}, 0, clock(t, "09:00"), clock(t, "11:00"))
	// Неположительный шаг заменяется дефолтными 30 минутами
	require.Len(t, slots, 4)
	assert.Equal(t, clock(t, "10:30"), slots[3].Start)
}

func TestChecker_DisabledSlots(t *testing.T) {
	checker := NewChecker()
	pool := staffPool(1, 2)

	// Оба мастера заняты 10:00-10:30, в 10:30 занят только один
	busy := StaffCalendar{
		1: {interval(t, "10:00", "10:30")},
		2: {interval(t, "10:00", "11:00")},
	}

	disabled := checker.DisabledSlots(pool, busy, 30, clock(t, "09:00"), clock(t, "12:00"))

	assert.Equal(t, []timeutil.Minutes{clock(t, "10:00")}, disabled)
}

func TestChecker_DisabledSlots_EmptyPool(t *testing.T) {
	checker := NewChecker()

	disabled := checker.DisabledSlots(nil, StaffCalendar{}, 30, clock(t, "09:00"), clock(t, "10:00"))

	// Без мастеров каждый слот отключен
	assert.Equal(t, []timeutil.Minutes{clock(t, "09:00"), clock(t, "09:30")}, disabled)
}

func TestChecker_DisabledSlots_Idempotent(t *testing.T) {
	checker := NewChecker()
	pool := staffPool(1, 2)
	busy := StaffCalendar{
		1: {interval(t, "09:00", "12:00")},
		2: {interval(t, "09:00", "10:00"), interval(t, "11:00", "12:00")},
	}

	first := checker.DisabledSlots(pool, busy, 30, clock(t, "09:00"), clock(t, "12:00"))
	second := checker.DisabledSlots(pool, busy, 30, clock(t, "09:00"), clock(t, "12:00"))

	assert.Equal(t, first, second)
}

func TestChecker_AvailableStaff(t *testing.T) {
	checker := NewChecker()
	pool := staffPool(1, 2, 3)

	busy := StaffCalendar{
		1: {interval(t, "10:00", "11:00")}, // пересекается с запросом
		2: {interval(t, "08:00", "10:00")}, // соприкасается, не пересекается
	}

	free, err := checker.AvailableStaff(clock(t, "10:00"), 60, pool, busy)
	require.NoError(t, err)

	ids := make([]int64, 0, len(free))
	for _, s := range free {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{2, 3}, ids)
}

func TestChecker_AvailableStaff_TouchingWindows(t *testing.T) {
	checker := NewChecker()
	pool := staffPool(1)

	// Существующая запись заканчивается ровно в начале запрошенного окна
	busy := StaffCalendar{
		1: {interval(t, "09:00", "10:00")},
	}

	free, err := checker.AvailableStaff(clock(t, "10:00"), 30, pool, busy)
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, int64(1), free[0].ID)
}

func TestChecker_AvailableStaff_InvalidDuration(t *testing.T) {
	checker := NewChecker()

	_, err := checker.AvailableStaff(clock(t, "10:00"), 0, staffPool(1), StaffCalendar{})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = checker.AvailableStaff(clock(t, "10:00"), -15, staffPool(1), StaffCalendar{})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestChecker_AvailableStaff_EmptyPool(t *testing.T) {
	checker := NewChecker()

	free, err := checker.AvailableStaff(clock(t, "10:00"), 30, nil, StaffCalendar{})
	require.NoError(t, err)
	assert.Empty(t, free)
}
