package get_available_staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdko/salon-booking-service/internal/domain"
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

type mockCatalogRepo struct {
	services map[int64]domain.SalonService
	err      error
}

func (m *mockCatalogRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.SalonService, error) {
	return m.services, m.err
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

func TestExecute_FiltersBusyStaff(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	catalog := &mockCatalogRepo{services: map[int64]domain.SalonService{
		10: {ID: 10, DurationMinutes: 60, BufferMinutes: 15, Active: true},
	}}
	staff := &mockStaffRepo{staff: []domain.Staff{
		{ID: 1, Name: "Anna", Active: true},
		{ID: 2, Name: "Boris", Active: true},
	}}
	// Мастер 1 занят 10:30-11:30, запрошенный блок 10:00-11:15 пересекается
	booking := &mockBookingRepo{intervals: map[int64][]timeutil.Interval{
		1: {{Start: mins(t, "10:30"), End: mins(t, "11:30")}},
	}}

	uc := NewUseCase(booking, staff, catalog, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       date,
		StartTime:  mins(t, "10:00"),
		ServiceIDs: []int64{10},
	})
	require.NoError(t, err)

	assert.Equal(t, 75, resp.TotalDurationMinutes)
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, int64(2), resp.Staff[0].ID)
	assert.Equal(t, "Boris", resp.Staff[0].Name)
}

func TestExecute_MultiServiceDurationSum(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	catalog := &mockCatalogRepo{services: map[int64]domain.SalonService{
		10: {ID: 10, DurationMinutes: 45, BufferMinutes: 15, Active: true},
		20: {ID: 20, DurationMinutes: 30, BufferMinutes: 0, Active: true},
	}}
	staff := &mockStaffRepo{staff: []domain.Staff{{ID: 1, Active: true}}}
	// Блок 10:00-11:30; запись 11:30-12:00 соприкасается и не мешает
	booking := &mockBookingRepo{intervals: map[int64][]timeutil.Interval{
		1: {{Start: mins(t, "11:30"), End: mins(t, "12:00")}},
	}}

	uc := NewUseCase(booking, staff, catalog, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       date,
		StartTime:  mins(t, "10:00"),
		ServiceIDs: []int64{10, 20},
	})
	require.NoError(t, err)

	assert.Equal(t, 90, resp.TotalDurationMinutes)
	assert.Len(t, resp.Staff, 1)
}

func TestExecute_UnknownServiceID(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&mockBookingRepo{},
		&mockStaffRepo{},
		&mockCatalogRepo{services: map[int64]domain.SalonService{}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date:       date,
		StartTime:  mins(t, "10:00"),
		ServiceIDs: []int64{99},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockStaffRepo{}, &mockCatalogRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero date", req: &Request{StartTime: 600, ServiceIDs: []int64{1}}},
		{name: "no services", req: &Request{Date: time.Now(), StartTime: 600}},
		{name: "negative service id", req: &Request{Date: time.Now(), StartTime: 600, ServiceIDs: []int64{-1}}},
		{name: "start time out of range", req: &Request{Date: time.Now(), StartTime: 1500, ServiceIDs: []int64{1}}},
		{name: "too many services", req: &Request{Date: time.Now(), StartTime: 600, ServiceIDs: []int64{1, 2, 3, 4, 5, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ZeroDurationServices(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&mockBookingRepo{},
		&mockStaffRepo{},
		&mockCatalogRepo{services: map[int64]domain.SalonService{
			10: {ID: 10, DurationMinutes: 0, BufferMinutes: 0, Active: true},
		}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date:       date,
		StartTime:  mins(t, "10:00"),
		ServiceIDs: []int64{10},
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
