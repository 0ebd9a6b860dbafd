package get_available_slots

import (
	"github.com/avdko/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/avdko/salon-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота рабочего дня
type SlotResponse struct {
	StartTime       string `json:"start_time"` // "10:00"
	DurationMinutes int    `json:"duration_minutes"`
	FreeStaff       int    `json:"free_staff"`
	TotalStaff      int    `json:"total_staff"`
	Disabled        bool   `json:"disabled"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string         `json:"date"` // "2026-09-15"
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: []SlotResponse{},
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			FreeStaff:       slot.FreeStaff,
			TotalStaff:      slot.TotalStaff,
			Disabled:        slot.Disabled,
		})
	}

	return out
}
