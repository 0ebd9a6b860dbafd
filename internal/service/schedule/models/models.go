package models

import (
	"time"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// Request модели

// UpsertConfigRequest запрос на создание/обновление конфигурации расписания
type UpsertConfigRequest struct {
	Weekday *int `json:"weekday,omitempty"` // nil = конфигурация по умолчанию
	Closed  bool `json:"closed"`

	OpenTime  string `json:"open_time"`  // "09:00"
	CloseTime string `json:"close_time"` // "19:00"

	SlotGranularityMinutes  int `json:"slot_granularity_minutes"`
	AdvanceBookingDays      int `json:"advance_booking_days"`
	MinBookingNoticeMinutes int `json:"min_booking_notice_minutes"`
}

// ToDomain конвертирует request в domain модель
func (r *UpsertConfigRequest) ToDomain() (*domain.ScheduleConfig, error) {
	open, err := timeutil.ParseClock(r.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := timeutil.ParseClock(r.CloseTime)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduleConfig{
		Weekday:                 r.Weekday,
		Closed:                  r.Closed,
		OpenMinute:              open,
		CloseMinute:             close,
		SlotGranularityMinutes:  r.SlotGranularityMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}, nil
}

// Response модели

// ConfigResponse ответ с конфигурацией расписания
type ConfigResponse struct {
	ID      int64 `json:"id"`
	Weekday *int  `json:"weekday,omitempty"`
	Closed  bool  `json:"closed"`

	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`

	SlotGranularityMinutes  int `json:"slot_granularity_minutes"`
	AdvanceBookingDays      int `json:"advance_booking_days"`
	MinBookingNoticeMinutes int `json:"min_booking_notice_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConfigListResponse ответ со списком конфигураций
type ConfigListResponse struct {
	Configs []ConfigResponse `json:"configs"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		ID:                      c.ID,
		Weekday:                 c.Weekday,
		Closed:                  c.Closed,
		OpenTime:                c.OpenMinute.String(),
		CloseTime:               c.CloseMinute.String(),
		SlotGranularityMinutes:  c.SlotGranularityMinutes,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.ScheduleConfig) *ConfigListResponse {
	resp := &ConfigListResponse{
		Configs: []ConfigResponse{},
	}
	for _, config := range configs {
		if configResp := FromDomainConfig(config); configResp != nil {
			resp.Configs = append(resp.Configs, *configResp)
		}
	}
	return resp
}
