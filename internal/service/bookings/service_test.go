package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdko/salon-booking-service/internal/domain"
	bookingRepo "github.com/avdko/salon-booking-service/internal/infra/storage/booking"
	staffRepo "github.com/avdko/salon-booking-service/internal/infra/storage/staff"
	"github.com/avdko/salon-booking-service/internal/service/bookings/models"
)

type mockBookingRepo struct {
	booking   *domain.Booking
	bookings  []*domain.Booking
	entries   []*domain.StaffScheduleEntry
	getErr    error
	cancelled bool
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.booking, nil
}

func (m *mockBookingRepo) GetByCustomerWithFilter(ctx context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, nil
}

func (m *mockBookingRepo) GetStaffDaySchedule(ctx context.Context, staffID int64, date time.Time) ([]*domain.StaffScheduleEntry, error) {
	return m.entries, nil
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	m.cancelled = true
	return nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return nil
}

type mockStaffRepo struct {
	staff *domain.Staff
	err   error
}

func (m *mockStaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.staff, nil
}

type mockMetrics struct {
	cancelled []string
}

func (m *mockMetrics) IncBookingsCancelled(status string) {
	m.cancelled = append(m.cancelled, status)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking(customerID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          10,
		Reference:   "ref-123",
		CustomerID:  customerID,
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartMinute: 600,
		Status:      status,
	}
}

func TestGetByID_OwnerAccess(t *testing.T) {
	repo := &mockBookingRepo{booking: testBooking(5, domain.StatusConfirmed)}
	svc := NewService(repo, &mockStaffRepo{}, nil, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "ref-123", resp.Reference)
}

func TestGetByID_AccessDenied(t *testing.T) {
	repo := &mockBookingRepo{booking: testBooking(5, domain.StatusConfirmed)}
	svc := NewService(repo, &mockStaffRepo{}, nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, &mockStaffRepo{}, nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_Success(t *testing.T) {
	repo := &mockBookingRepo{booking: testBooking(5, domain.StatusConfirmed)}
	metrics := &mockMetrics{}
	svc := NewService(repo, &mockStaffRepo{}, metrics, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		CustomerID:         5,
		CancellationReason: "передумала",
	})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, []string{string(domain.StatusCancelledByCustomer)}, metrics.cancelled)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &mockBookingRepo{booking: testBooking(5, domain.StatusConfirmed)}
	svc := NewService(repo, &mockStaffRepo{}, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{CustomerID: 999})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.cancelled)
}

func TestCancel_CannotCancelStarted(t *testing.T) {
	repo := &mockBookingRepo{booking: testBooking(5, domain.StatusInProgress)}
	svc := NewService(repo, &mockStaffRepo{}, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{CustomerID: 5})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.False(t, repo.cancelled)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, &mockStaffRepo{}, nil, nopLogger{})

	badStatus := "who-knows"
	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 5,
		Status:     &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStaffDaySchedule(t *testing.T) {
	name := "Anna"
	repo := &mockBookingRepo{entries: []*domain.StaffScheduleEntry{
		{
			BookingID:        10,
			BookingReference: "ref-123",
			ServiceID:        1,
			ServiceName:      "Haircut",
			StartMinute:      600,
			EndMinute:        675,
			Status:           domain.StatusConfirmed,
			CustomerName:     &name,
		},
	}}
	staff := &mockStaffRepo{staff: &domain.Staff{ID: 3, Name: "Boris"}}
	svc := NewService(repo, staff, nil, nopLogger{})

	resp, err := svc.GetStaffDaySchedule(context.Background(), &models.GetStaffScheduleRequest{
		StaffID: 3,
		Date:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "Boris", resp.StaffName)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "10:00", resp.Entries[0].StartTime)
	assert.Equal(t, "11:15", resp.Entries[0].EndTime)
}

func TestGetStaffDaySchedule_StaffNotFound(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, &mockStaffRepo{err: staffRepo.ErrStaffNotFound}, nil, nopLogger{})

	_, err := svc.GetStaffDaySchedule(context.Background(), &models.GetStaffScheduleRequest{
		StaffID: 999,
		Date:    time.Now(),
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
