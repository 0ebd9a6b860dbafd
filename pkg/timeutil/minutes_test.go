package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Minutes
		wantErr  bool
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "morning", input: "09:30", expected: 570},
		{name: "last minute of day", input: "23:59", expected: 1439},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "wrong separator", input: "09-30", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMinutes_String(t *testing.T) {
	assert.Equal(t, "00:00", Minutes(0).String())
	assert.Equal(t, "09:05", Minutes(545).String())
	assert.Equal(t, "23:59", Minutes(1439).String())
}

func TestMinutes_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:45", "12:00", "19:30", "23:59"} {
		m, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
}

func TestFromTime(t *testing.T) {
	moment := time.Date(2026, 9, 15, 14, 25, 59, 0, time.UTC)
	assert.Equal(t, Minutes(14*60+25), FromTime(moment))
}

func TestMinutes_Valid(t *testing.T) {
	assert.True(t, Minutes(0).Valid())
	assert.True(t, Minutes(1439).Valid())
	assert.False(t, Minutes(1440).Valid())
	assert.False(t, Minutes(-1).Valid())
}

func TestMinutes_Add(t *testing.T) {
	start := Minutes(600) // 10:00
	assert.Equal(t, Minutes(675), start.Add(75))
	assert.Equal(t, Minutes(570), start.Add(-30))
}
