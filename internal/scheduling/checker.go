package scheduling

import (
	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// Checker отвечает на вопросы о доступности, не меняя состояния
type Checker struct{}

// NewChecker создает checker доступности
func NewChecker() Checker {
	return Checker{}
}

// ScanSlots проходит рабочий день [open, close) с шагом granularity и для
// каждого слота считает, сколько мастеров из пула заняты на момент его
// начала. Мастер занят, если хотя бы один из его интервалов накрывает
// начало слота.
func (Checker) ScanSlots(
	pool []domain.Staff,
	busy StaffCalendar,
	granularityMinutes int,
	open, close timeutil.Minutes,
) []SlotLoad {
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultSlotGranularityMinutes
	}

	slots := make([]SlotLoad, 0)

	for slot := open; slot < close; slot = slot.Add(granularityMinutes) {
		busyCount := 0
		for _, staff := range pool {
			if coversInstant(busy[staff.ID], slot) {
				busyCount++
			}
		}
		slots = append(slots, SlotLoad{Start: slot, BusyStaff: busyCount})
	}

	return slots
}

// DisabledSlots возвращает слоты, в которых заняты ВСЕ мастера пула.
// Слот отключен тогда и только тогда, когда на момент его начала нет ни
// одного свободного мастера; это предварительный фильтр — длительность
// еще не выбранной услуги он не учитывает.
// Пустой пул дает все слоты отключенными.
func (c Checker) DisabledSlots(
	pool []domain.Staff,
	busy StaffCalendar,
	granularityMinutes int,
	open, close timeutil.Minutes,
) []timeutil.Minutes {
	disabled := make([]timeutil.Minutes, 0)

	for _, slot := range c.ScanSlots(pool, busy, granularityMinutes, open, close) {
		if slot.BusyStaff == len(pool) {
			disabled = append(disabled, slot.Start)
		}
	}

	return disabled
}

// AvailableStaff возвращает мастеров пула, свободных для блока
// [start, start+totalDuration). Мастер занят, если какой-либо его интервал
// пересекается с запрошенным окном по полуоткрытому предикату
// (start < apptEnd && end > apptStart).
// Гарантия: бронирование возвращенного мастера на это окно не создает
// двойного бронирования.
func (Checker) AvailableStaff(
	start timeutil.Minutes,
	totalDurationMinutes int,
	pool []domain.Staff,
	busy StaffCalendar,
) ([]domain.Staff, error) {
	if totalDurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	window := timeutil.NewInterval(start, totalDurationMinutes)

	free := make([]domain.Staff, 0, len(pool))
	for _, staff := range pool {
		if !overlapsAny(busy[staff.ID], window) {
			free = append(free, staff)
		}
	}

	return free, nil
}

// coversInstant проверяет, что момент времени лежит внутри одного из интервалов
func coversInstant(intervals []timeutil.Interval, m timeutil.Minutes) bool {
	for _, iv := range intervals {
		if iv.Contains(m) {
			return true
		}
	}
	return false
}

// overlapsAny проверяет пересечение окна с одним из интервалов
func overlapsAny(intervals []timeutil.Interval, window timeutil.Interval) bool {
	for _, iv := range intervals {
		if iv.Overlaps(window) {
			return true
		}
	}
	return false
}
