package timeutil

// Interval полуоткрытый интервал времени [Start, End) в минутах от полуночи
type Interval struct {
	Start Minutes
	End   Minutes
}

// NewInterval строит интервал от начала и длительности в минутах
func NewInterval(start Minutes, durationMinutes int) Interval {
	return Interval{Start: start, End: start.Add(durationMinutes)}
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов.
// Интервалы, соприкасающиеся границами (End одного == Start другого),
// НЕ считаются пересекающимися.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// Contains проверяет, что момент времени лежит внутри интервала
func (i Interval) Contains(m Minutes) bool {
	return i.Start <= m && m < i.End
}

// Duration длительность интервала в минутах
func (i Interval) Duration() int {
	return int(i.End - i.Start)
}
