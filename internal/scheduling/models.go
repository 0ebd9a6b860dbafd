// Package scheduling содержит ядро проверки доступности и назначения
// мастеров. Это единственное место в сервисе, где живут предикат
// пересечения интервалов, скан слотов рабочего дня и алгоритм подбора
// мастера — все usecases делегируют сюда.
package scheduling

import (
	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// StaffCalendar занятые интервалы мастеров на один день.
// Ключ — ID мастера; интервалы уже включают буферы услуг.
// Снимок неизменяемый: ядро его не модифицирует.
type StaffCalendar map[int64][]timeutil.Interval

// SlotLoad загрузка мастеров на момент начала одного слота
type SlotLoad struct {
	Start     timeutil.Minutes
	BusyStaff int
}

// ServiceRequest одна услуга запроса на бронирование
type ServiceRequest struct {
	Service          domain.SalonService
	PreferredStaffID *int64 // nil = клиент не выбрал мастера
}

// Assignment результат назначения мастера на одну услугу
type Assignment struct {
	ServiceID int64
	StaffID   int64
	Window    timeutil.Interval

	// Fallback означает, что свободных мастеров не нашлось и назначение
	// сделано поверх занятого календаря; требует ручной корректировки
	Fallback bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
