package scheduling

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/ptr"
)

type testLogger struct {
	warnings []string
}

func (l *testLogger) Info(format string, v ...interface{}) {}
func (l *testLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}
func (l *testLogger) Error(format string, v ...interface{}) {}

func newTestAssigner(seed int64) (*Assigner, *testLogger) {
	log := &testLogger{}
	return NewAssigner(rand.New(rand.NewSource(seed)), log), log
}

func service(id int64, duration, buffer int) domain.SalonService {
	return domain.SalonService{
		ID:              id,
		Name:            fmt.Sprintf("service-%d", id),
		DurationMinutes: duration,
		BufferMinutes:   buffer,
		Active:          true,
	}
}

func TestAssigner_SingleService(t *testing.T) {
	assigner, _ := newTestAssigner(1)
	pool := staffPool(1, 2)

	requests := []ServiceRequest{{Service: service(10, 60, 15)}}

	assignments, err := assigner.Assign(clock(t, "10:00"), requests, pool, StaffCalendar{})
	require.NoError(t, err)
	require.Len(t, assignments, 1)

	a := assignments[0]
	assert.Equal(t, int64(10), a.ServiceID)
	assert.Contains(t, []int64{1, 2}, a.StaffID)
	// Окно включает буфер
	assert.Equal(t, interval(t, "10:00", "11:15"), a.Window)
	assert.False(t, a.Fallback)
}

func TestAssigner_SequentialChaining(t *testing.T) {
	assigner, _ := newTestAssigner(1)
	pool := staffPool(1, 2, 3)

	requests := []ServiceRequest{
		{Service: service(10, 45, 15)}, // 10:00-11:00
		{Service: service(20, 30, 0)},  // 11:00-11:30
		{Service: service(30, 60, 10)}, // 11:30-12:40
	}

	assignments, err := assigner.Assign(clock(t, "10:00"), requests, pool, StaffCalendar{})
	require.NoError(t, err)
	require.Len(t, assignments, 3)

	// Каждая следующая услуга начинается там, где закончилась предыдущая
	assert.Equal(t, interval(t, "10:00", "11:00"), assignments[0].Window)
	assert.Equal(t, interval(t, "11:00", "11:30"), assignments[1].Window)
	assert.Equal(t, interval(t, "11:30", "12:40"), assignments[2].Window)
	for i := 1; i < len(assignments); i++ {
		assert.Equal(t, assignments[i-1].Window.End, assignments[i].Window.Start)
	}
}

func TestAssigner_SameStaffForSequentialServices(t *testing.T) {
	// Единственный мастер: окна услуг соприкасаются, но не пересекаются,
	// поэтому он может выполнить обе услуги подряд
	assigner, _ := newTestAssigner(1)
	pool := staffPool(7)

	requests := []ServiceRequest{
		{Service: service(10, 30, 0)},
		{Service: service(20, 45, 15)},
	}

	assignments, err := assigner.Assign(clock(t, "09:00"), requests, pool, StaffCalendar{})
	require.NoError(t, err)
	require.Len(t, assignments, 2)

	assert.Equal(t, int64(7), assignments[0].StaffID)
	assert.Equal(t, int64(7), assignments[1].StaffID)
	assert.False(t, assignments[0].Fallback)
	assert.False(t, assignments[1].Fallback)
}

func TestAssigner_QualificationFilter(t *testing.T) {
	assigner, _ := newTestAssigner(1)

	pool := []domain.Staff{
		{ID: 1, Active: true, QualifiedServiceIDs: []int64{99}}, // не умеет услугу 10
		{ID: 2, Active: true, QualifiedServiceIDs: []int64{10}},
	}

	requests := []ServiceRequest{{Service: service(10, 30, 0)}}

	assignments, err := assigner.Assign(clock(t, "10:00"), requests, pool, StaffCalendar{})
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, int64(2), assignments[0].StaffID)
	assert.False(t, assignments[0].Fallback)
}

func TestAssigner_DeterministicWithSeed(t *testing.T) {
	pool := staffPool(1, 2, 3, 4, 5)
	requests := []ServiceRequest{
		{Service: service(10, 30, 0)},
		{Service: service(20, 60, 15)},
	}

	first, log1 := newTestAssigner(42)
	second, log2 := newTestAssigner(42)

	a1, err := first.Assign(clock(t, "10:00"), requests, pool, StaffCalendar{})
	require.NoError(t, err)
	a2, err := second.Assign(clock(t, "10:00"), requests, pool, StaffCalendar{})
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Empty(t, log1.warnings)
	assert.Empty(t, log2.warnings)
}

func TestAssigner_PreferredStaffAcceptedDespiteConflict(t *testing.T) {
	assigner, log := newTestAssigner(1)
	pool := staffPool(1, 2)

	// Мастер 1 занят на запрошенное окно, но клиент выбрал именно его
	busy := StaffCalendar{
		1: {interval(t, "10:00", "11:00")},
	}

	requests := []ServiceRequest{
		{Service: service(10, 60, 0), PreferredStaffID: ptr.Ptr(int64(1))},
	}

	assignments, err := assigner.Assign(clock(t, "10:00"), requests, pool, busy)
	require.NoError(t, err)
	require.Len(t, assignments, 1)

	// Выбор клиента принят, конфликт только залогирован
	assert.Equal(t, int64(1), assignments[0].StaffID)
	assert.False(t, assignments[0].Fallback)
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "preferred staff id=1")
}

func TestAssigner_OverbookedFallback(t *testing.T) {
	assigner, log := newTestAssigner(1)
	pool := staffPool(1, 2)

	// Все мастера заняты на запрошенное окно
	busy := StaffCalendar{
		1: {interval(t, "09:00", "12:00")},
		2: {interval(t, "09:00", "12:00")},
	}

	requests := []ServiceRequest{{Service: service(10, 60, 0)}}

	assignments, err := assigner.Assign(clock(t, "10:00"), requests, pool, busy)
	require.NoError(t, err)
	require.Len(t, assignments, 1)

	// Назначается первый активный мастер пула поверх его календаря
	assert.Equal(t, int64(1), assignments[0].StaffID)
	assert.True(t, assignments[0].Fallback)
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "overbooked")
}

func TestAssigner_FallbackSkipsInactive(t *testing.T) {
	assigner, _ := newTestAssigner(1)

	pool := []domain.Staff{
		{ID: 1, Active: false},
		{ID: 2, Active: true},
	}
	busy := StaffCalendar{
		2: {interval(t, "09:00", "12:00")},
	}

	requests := []ServiceRequest{{Service: service(10, 60, 0)}}

	assignments, err := assigner.Assign(clock(t, "10:00"), requests, pool, busy)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, int64(2), assignments[0].StaffID)
	assert.True(t, assignments[0].Fallback)
}

func TestAssigner_NoActiveStaff(t *testing.T) {
	assigner, _ := newTestAssigner(1)

	pool := []domain.Staff{{ID: 1, Active: false}}
	requests := []ServiceRequest{{Service: service(10, 60, 0)}}

	_, err := assigner.Assign(clock(t, "10:00"), requests, pool, StaffCalendar{})
	assert.ErrorIs(t, err, ErrNoActiveStaff)
}

func TestAssigner_NoServices(t *testing.T) {
	assigner, _ := newTestAssigner(1)

	_, err := assigner.Assign(clock(t, "10:00"), nil, staffPool(1), StaffCalendar{})
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestAssigner_InvalidDuration(t *testing.T) {
	assigner, _ := newTestAssigner(1)

	requests := []ServiceRequest{{Service: service(10, 0, 0)}}

	_, err := assigner.Assign(clock(t, "10:00"), requests, staffPool(1), StaffCalendar{})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
