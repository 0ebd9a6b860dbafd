package get_available_slots

import (
	"time"

	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// Request модель запроса на получение слотов рабочего дня
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами рабочего дня
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot модель одного слота рабочего дня
type Slot struct {
	StartTime       timeutil.Minutes // Время начала слота
	DurationMinutes int              // Длительность слота (шаг сетки)
	FreeStaff       int              // Мастера, свободные на момент начала
	TotalStaff      int              // Всего активных мастеров
	Disabled        bool             // Заняты все мастера
}
