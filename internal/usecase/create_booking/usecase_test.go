package create_booking

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/internal/integrations/customerservice"
	"github.com/avdko/salon-booking-service/internal/scheduling"
	"github.com/avdko/salon-booking-service/pkg/ptr"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

type mockBookingRepo struct {
	intervals map[int64][]timeutil.Interval
	created   *domain.Booking
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = 100
	stored.CreatedAt = time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	m.created = &stored
	return &stored, nil
}

func (m *mockBookingRepo) GetStaffDayIntervals(ctx context.Context, date time.Time) (map[int64][]timeutil.Interval, error) {
	return m.intervals, nil
}

type mockStaffRepo struct {
	staff []domain.Staff
}

func (m *mockStaffRepo) GetActive(ctx context.Context) ([]domain.Staff, error) {
	return m.staff, nil
}

type mockCatalogRepo struct {
	services map[int64]domain.SalonService
}

func (m *mockCatalogRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.SalonService, error) {
	return m.services, nil
}

type mockScheduleRepo struct {
	config *domain.ScheduleConfig
}

func (m *mockScheduleRepo) GetForWeekday(ctx context.Context, weekday int) (*domain.ScheduleConfig, error) {
	return m.config, nil
}

type mockCustomerClient struct {
	customer *customerservice.Customer
	err      error
}

func (m *mockCustomerClient) GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*customerservice.Customer, error) {
	return m.customer, m.err
}

type mockTxManager struct{}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockMetrics struct {
	created   int
	fallbacks int
}

func (m *mockMetrics) IncBookingsCreated()     { m.created++ }
func (m *mockMetrics) IncFallbackAssignments() { m.fallbacks++ }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func mins(t *testing.T, s string) timeutil.Minutes {
	t.Helper()
	m, err := timeutil.ParseClock(s)
	require.NoError(t, err)
	return m
}

type fixture struct {
	uc       *UseCase
	booking  *mockBookingRepo
	metrics  *mockMetrics
	schedule *mockScheduleRepo
	customer *mockCustomerClient
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		booking: &mockBookingRepo{intervals: map[int64][]timeutil.Interval{}},
		metrics: &mockMetrics{},
		schedule: &mockScheduleRepo{config: &domain.ScheduleConfig{
			OpenMinute:              mins(t, "09:00"),
			CloseMinute:             mins(t, "19:00"),
			SlotGranularityMinutes:  30,
			MinBookingNoticeMinutes: 60,
		}},
		customer: &mockCustomerClient{customer: &customerservice.Customer{
			ID:    5,
			Name:  "Anna",
			Email: "anna@example.com",
		}},
	}

	staffRepo := &mockStaffRepo{staff: []domain.Staff{
		{ID: 1, Active: true},
		{ID: 2, Active: true},
	}}
	catalogRepo := &mockCatalogRepo{services: map[int64]domain.SalonService{
		10: {ID: 10, Name: "Haircut", DurationMinutes: 45, BufferMinutes: 15, Price: 1500, Active: true},
		20: {ID: 20, Name: "Coloring", DurationMinutes: 60, BufferMinutes: 0, Price: 3000, Active: true},
	}}

	f.uc = NewUseCase(
		f.booking,
		staffRepo,
		catalogRepo,
		f.schedule,
		f.customer,
		mockTxManager{},
		f.metrics,
		nopLogger{},
	)
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)}
	f.uc.assigner = scheduling.NewAssigner(rand.New(rand.NewSource(1)), nopLogger{})

	return f
}

func validRequest(t *testing.T) *Request {
	return &Request{
		CustomerID: 5,
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:  mins(t, "10:00"),
		Services: []ServiceSelection{
			{ServiceID: 10},
			{ServiceID: 20},
		},
	}
}

func TestExecute_CreatesSequentialBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 120, resp.TotalDurationMinutes)

	require.Len(t, resp.Items, 2)
	// Услуги идут последовательно: вторая начинается на конце первой
	assert.Equal(t, mins(t, "10:00"), resp.Items[0].StartTime)
	assert.Equal(t, mins(t, "11:00"), resp.Items[0].EndTime)
	assert.Equal(t, mins(t, "11:00"), resp.Items[1].StartTime)
	assert.Equal(t, mins(t, "12:00"), resp.Items[1].EndTime)

	// Денормализованные данные клиента и услуг сохранены
	require.NotNil(t, f.booking.created.CustomerName)
	assert.Equal(t, "Anna", *f.booking.created.CustomerName)
	assert.Equal(t, "Haircut", f.booking.created.Items[0].ServiceName)
	assert.Equal(t, 1500.0, f.booking.created.Items[0].ServicePrice)

	assert.Equal(t, 1, f.metrics.created)
	assert.Equal(t, 0, f.metrics.fallbacks)
}

func TestExecute_UnknownService(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.Services = []ServiceSelection{{ServiceID: 999}}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Equal(t, 0, f.metrics.created)
}

func TestExecute_SalonClosed(t *testing.T) {
	f := newFixture(t)
	f.schedule.config.Closed = true

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.StartTime = mins(t, "18:00") // блок 120 минут заканчивается в 20:00

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_UnalignedStartTime(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.StartTime = mins(t, "10:10")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	f := newFixture(t)

	// Запись на сегодня ближе чем за 60 минут до начала
	req := validRequest(t)
	req.Date = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	req.StartTime = mins(t, "10:30")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := newFixture(t)
	f.customer.customer = nil
	f.customer.err = customerservice.ErrCustomerNotFound

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_ProceedsWhenCustomerServiceDegraded(t *testing.T) {
	f := newFixture(t)
	f.customer.customer = nil
	f.customer.err = customerservice.ErrServiceDegraded

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// Бронирование создано без профиля клиента
	assert.Equal(t, int64(100), resp.ID)
	assert.Nil(t, f.booking.created.CustomerName)
}

func TestExecute_PreferredStaffNotInPool(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.Services[0].PreferredStaffID = ptr.Ptr(int64(999))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_OverbookedFallbackCountsMetric(t *testing.T) {
	f := newFixture(t)

	// Оба мастера заняты на весь день
	f.booking.intervals = map[int64][]timeutil.Interval{
		1: {{Start: mins(t, "09:00"), End: mins(t, "19:00")}},
		2: {{Start: mins(t, "09:00"), End: mins(t, "19:00")}},
	}

	req := validRequest(t)
	req.Services = []ServiceSelection{{ServiceID: 10}}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Бронирование не падает из-за занятости: назначен первый активный мастер
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1), resp.Items[0].StaffID)
	assert.Equal(t, 1, f.metrics.created)
	assert.Equal(t, 1, f.metrics.fallbacks)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero customer id", mutate: func(req *Request) { req.CustomerID = 0 }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
		{name: "no services", mutate: func(req *Request) { req.Services = nil }},
		{name: "too many services", mutate: func(req *Request) {
			req.Services = make([]ServiceSelection, domain.MaxServicesPerBooking+1)
			for i := range req.Services {
				req.Services[i] = ServiceSelection{ServiceID: int64(i + 1)}
			}
		}},
		{name: "negative preferred staff", mutate: func(req *Request) {
			req.Services[0].PreferredStaffID = ptr.Ptr(int64(-1))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
