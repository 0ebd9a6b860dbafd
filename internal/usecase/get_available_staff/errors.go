package get_available_staff

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_staff: service not found")

	// ErrInvalidDuration возвращается при нулевой суммарной длительности услуг
	ErrInvalidDuration = errors.New("get_available_staff: total duration must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_staff: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_staff: internal error")
)
