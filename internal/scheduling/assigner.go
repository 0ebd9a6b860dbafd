package scheduling

import (
	"math/rand"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// Assigner разрешает мультиуслуговое бронирование в список назначений
// мастеров. Услуги ставятся последовательно: каждая следующая начинается
// ровно там, где закончилась предыдущая (включая буфер).
//
// Источник случайности инжектируется, чтобы выбор мастера был
// воспроизводим в тестах.
type Assigner struct {
	checker Checker
	rng     *rand.Rand
	logger  Logger
}

// NewAssigner создает assigner с переданным источником случайности
func NewAssigner(rng *rand.Rand, logger Logger) *Assigner {
	return &Assigner{
		checker: NewChecker(),
		rng:     rng,
		logger:  logger,
	}
}

// Assign назначает мастера на каждую услугу бронирования.
//
// Для услуги с выбранным клиентом мастером предпочтение принимается без
// проверки доступности (конфликт только логируется — см. DESIGN.md).
// Для остальных кандидаты фильтруются по активности и квалификации, затем
// исключаются мастера, уже занятые ранее в этом же бронировании, затем
// занятые по существующим бронированиям; из оставшихся выбирается один
// равновероятно. Если кандидатов не осталось, назначается первый активный
// мастер пула — бронирование никогда не падает из-за занятости, перегруз
// исправляется вручную.
//
// Ошибка возвращается только при некорректных данных: пустой список услуг,
// неположительная длительность, полное отсутствие активных мастеров.
func (a *Assigner) Assign(
	start timeutil.Minutes,
	requests []ServiceRequest,
	pool []domain.Staff,
	busy StaffCalendar,
) ([]Assignment, error) {
	if len(requests) == 0 {
		return nil, ErrNoServices
	}

	assignments := make([]Assignment, 0, len(requests))
	cursor := start

	for _, req := range requests {
		duration := req.Service.TotalMinutes()
		if duration <= 0 {
			return nil, ErrInvalidDuration
		}

		window := timeutil.NewInterval(cursor, duration)

		var assignment Assignment
		if req.PreferredStaffID != nil {
			assignment = a.assignPreferred(req, window, assignments, busy)
		} else {
			var err error
			assignment, err = a.assignAuto(req, window, pool, assignments, busy)
			if err != nil {
				return nil, err
			}
		}

		assignments = append(assignments, assignment)
		cursor = window.End
	}

	return assignments, nil
}

// assignPreferred принимает выбор клиента без проверки доступности.
// Конфликт с календарем мастера или с более ранней услугой этого же
// бронирования логируется для операционной видимости.
func (a *Assigner) assignPreferred(
	req ServiceRequest,
	window timeutil.Interval,
	assigned []Assignment,
	busy StaffCalendar,
) Assignment {
	staffID := *req.PreferredStaffID

	if overlapsAny(busy[staffID], window) || overlapsInBooking(staffID, window, assigned) {
		a.logger.Warn("Assign: preferred staff id=%d has a conflicting booking in [%s, %s), accepting anyway",
			staffID, window.Start, window.End)
	}

	return Assignment{
		ServiceID: req.Service.ID,
		StaffID:   staffID,
		Window:    window,
	}
}

// assignAuto подбирает мастера для услуги без выбранного мастера
func (a *Assigner) assignAuto(
	req ServiceRequest,
	window timeutil.Interval,
	pool []domain.Staff,
	assigned []Assignment,
	busy StaffCalendar,
) (Assignment, error) {
	// Кандидаты: активные мастера, квалифицированные для услуги,
	// не занятые ранее в этом же бронировании на пересекающемся окне
	candidates := make([]domain.Staff, 0, len(pool))
	for _, staff := range pool {
		if !staff.Active || !staff.QualifiedFor(req.Service.ID) {
			continue
		}
		if overlapsInBooking(staff.ID, window, assigned) {
			continue
		}
		candidates = append(candidates, staff)
	}

	// Исключаем занятых по существующим бронированиям
	free, err := a.checker.AvailableStaff(window.Start, window.Duration(), candidates, busy)
	if err != nil {
		return Assignment{}, err
	}

	if len(free) > 0 {
		chosen := free[a.rng.Intn(len(free))]
		return Assignment{
			ServiceID: req.Service.ID,
			StaffID:   chosen.ID,
			Window:    window,
		}, nil
	}

	// Свободных нет: назначаем первого активного мастера поверх его
	// календаря, бронирование не должно падать из-за занятости
	fallback, ok := firstActive(pool)
	if !ok {
		return Assignment{}, ErrNoActiveStaff
	}

	a.logger.Warn("Assign: no free staff for service id=%d in [%s, %s), falling back to staff id=%d (overbooked)",
		req.Service.ID, window.Start, window.End, fallback.ID)

	return Assignment{
		ServiceID: req.Service.ID,
		StaffID:   fallback.ID,
		Window:    window,
		Fallback:  true,
	}, nil
}

// overlapsInBooking проверяет, что мастер уже назначен в этом бронировании
// на окно, пересекающееся с запрошенным
func overlapsInBooking(staffID int64, window timeutil.Interval, assigned []Assignment) bool {
	for _, a := range assigned {
		if a.StaffID == staffID && a.Window.Overlaps(window) {
			return true
		}
	}
	return false
}

func firstActive(pool []domain.Staff) (domain.Staff, bool) {
	for _, staff := range pool {
		if staff.Active {
			return staff, true
		}
	}
	return domain.Staff{}, false
}
