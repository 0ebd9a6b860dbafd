package get_available_staff

import (
	"strconv"
	"strings"
	"time"

	"github.com/avdko/salon-booking-service/internal/domain"
	getAvailableStaff "github.com/avdko/salon-booking-service/internal/usecase/get_available_staff"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// StaffMemberResponse HTTP модель свободного мастера
type StaffMemberResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StaffResponse HTTP response model
type StaffResponse struct {
	Date                 string                `json:"date"`       // "2026-09-15"
	StartTime            string                `json:"start_time"` // "10:00"
	TotalDurationMinutes int                   `json:"total_duration_minutes"`
	Staff                []StaffMemberResponse `json:"staff"`
}

// parseQuery парсит query-параметры в модель use case.
// services передается как список ID через запятую: services=1,2,3
func parseQuery(dateStr, timeStr, servicesStr string) (*getAvailableStaff.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := timeutil.ParseClock(timeStr)
	if err != nil {
		return nil, err
	}

	var serviceIDs []int64
	for _, part := range strings.Split(servicesStr, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		serviceIDs = append(serviceIDs, id)
	}

	return &getAvailableStaff.Request{
		Date:       date,
		StartTime:  startTime,
		ServiceIDs: serviceIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableStaff.Response) *StaffResponse {
	out := &StaffResponse{
		Date:                 resp.Date.Format(domain.DateFormat),
		StartTime:            resp.StartTime.String(),
		TotalDurationMinutes: resp.TotalDurationMinutes,
		Staff:                []StaffMemberResponse{},
	}

	for _, member := range resp.Staff {
		out.Staff = append(out.Staff, StaffMemberResponse{
			ID:    member.ID,
			Name:  member.Name,
			Email: member.Email,
		})
	}

	return out
}
