// Package timeutil содержит арифметику времени в минутах от полуночи.
// Вся логика доступности оперирует целыми минутами; формат HH:MM
// используется только на границах сервиса.
package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// ErrInvalidClock возвращается при некорректной строке времени HH:MM
var ErrInvalidClock = errors.New("timeutil: invalid clock string, expected HH:MM")

// Minutes время суток в минутах от полуночи
type Minutes int

// ParseClock парсит строку вида "10:30" в минуты от полуночи
func ParseClock(s string) (Minutes, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, ok := twoDigits(s[0], s[1])
	if !ok || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	mins, ok := twoDigits(s[3], s[4])
	if !ok || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return Minutes(hours*60 + mins), nil
}

// FromTime возвращает минуты от полуночи для момента времени
func FromTime(t time.Time) Minutes {
	return Minutes(t.Hour()*60 + t.Minute())
}

// String форматирует минуты в "HH:MM"
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Valid проверяет, что значение лежит внутри суток
func (m Minutes) Valid() bool {
	return m >= 0 && m < MinutesPerDay
}

// Add возвращает время, сдвинутое на указанное количество минут
func (m Minutes) Add(minutes int) Minutes {
	return m + Minutes(minutes)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
