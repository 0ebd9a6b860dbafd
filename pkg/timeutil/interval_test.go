package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Interval
		b        Interval
		expected bool
	}{
		{
			name:     "identical intervals overlap",
			a:        Interval{Start: 600, End: 660},
			b:        Interval{Start: 600, End: 660},
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        Interval{Start: 600, End: 660},
			b:        Interval{Start: 630, End: 690},
			expected: true,
		},
		{
			name:     "containment",
			a:        Interval{Start: 600, End: 720},
			b:        Interval{Start: 630, End: 660},
			expected: true,
		},
		{
			name:     "touching boundaries do not overlap",
			a:        Interval{Start: 600, End: 660},
			b:        Interval{Start: 660, End: 720},
			expected: false,
		},
		{
			name:     "touching boundaries reversed",
			a:        Interval{Start: 660, End: 720},
			b:        Interval{Start: 600, End: 660},
			expected: false,
		},
		{
			name:     "disjoint",
			a:        Interval{Start: 600, End: 630},
			b:        Interval{Start: 700, End: 730},
			expected: false,
		},
		{
			name:     "one minute overlap",
			a:        Interval{Start: 600, End: 661},
			b:        Interval{Start: 660, End: 720},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	i := Interval{Start: 600, End: 660}

	assert.True(t, i.Contains(600), "start is inside")
	assert.True(t, i.Contains(659))
	assert.False(t, i.Contains(660), "end is outside (half-open)")
	assert.False(t, i.Contains(599))
}

func TestNewInterval(t *testing.T) {
	i := NewInterval(600, 75)
	assert.Equal(t, Minutes(600), i.Start)
	assert.Equal(t, Minutes(675), i.End)
	assert.Equal(t, 75, i.Duration())
}
