package scheduling

import "errors"

var (
	// ErrInvalidDuration возвращается при нулевой или отрицательной длительности
	ErrInvalidDuration = errors.New("scheduling: duration must be positive")

	// ErrNoServices возвращается при пустом списке услуг
	ErrNoServices = errors.New("scheduling: booking must contain at least one service")

	// ErrNoActiveStaff возвращается, когда в пуле нет ни одного активного
	// мастера и fallback-назначение невозможно
	ErrNoActiveStaff = errors.New("scheduling: no active staff available")
)
