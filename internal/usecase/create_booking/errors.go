package create_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate невалидная или прошедшая дата
	ErrInvalidDate = errors.New("invalid date")

	// ErrDateTooFarInFuture дата за пределами окна предварительной записи
	ErrDateTooFarInFuture = errors.New("date is too far in future")

	// ErrSalonClosed салон закрыт в указанный день
	ErrSalonClosed = errors.New("salon is closed on this date")

	// ErrOutsideBusinessHours бронирование выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("booking is outside business hours")

	// ErrInvalidTimeSlot время начала не выровнено по сетке слотов
	ErrInvalidTimeSlot = errors.New("start time is not aligned to slot grid")

	// ErrTooLateToBook не соблюден минимальный интервал до начала
	ErrTooLateToBook = errors.New("too late to book this slot")

	// ErrServiceNotFound услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound предпочитаемый мастер не найден среди активных
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrCustomerNotFound клиент не найден в CustomerService
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrNoActiveStaff в салоне нет ни одного активного мастера
	ErrNoActiveStaff = errors.New("no active staff")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
