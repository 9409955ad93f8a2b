package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{"09:00", 9, 0, false},
		{"23:59", 23, 59, false},
		{"00:00", 0, 0, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"12", 0, 0, true},
		{"ab:cd", 0, 0, true},
		{"", 0, 0, true},
		{"12:00:00", 0, 0, true},
	}

	for _, tt := range tests {
		h, m, err := ParseClock(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.hour, h)
		assert.Equal(t, tt.minute, m)
	}
}

func TestClockOn(t *testing.T) {
	day := time.Date(2026, 9, 1, 14, 22, 37, 0, time.Local)

	got, err := ClockOn(day, "10:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local), got)

	_, err = ClockOn(day, "nope")
	assert.Error(t, err)
}

func TestNextMinute(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 15, 0, 0, time.Local)

	assert.Equal(t, base, NextMinute(base), "minute boundary is unchanged")
	assert.Equal(t, base.Add(time.Minute), NextMinute(base.Add(time.Second)))
	assert.Equal(t, base.Add(time.Minute), NextMinute(base.Add(59*time.Second)))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 9, 1, 0, 0, 1, 0, time.Local)
	b := time.Date(2026, 9, 1, 23, 59, 59, 0, time.Local)
	c := time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-09-01", time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)},
		{"2026-09-01 14:30", time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)},
		{"2026-09-01T14:30:00", time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)},
		{"Sep 1, 2026", time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)},
		{"1 Sep 2026", time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)},
		{"09/01/2026", time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)},
		{"  2026-09-01  ", time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		got, err := NormalizeDate(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestNormalizeDate_RFC3339KeepsOffset(t *testing.T) {
	got, err := NormalizeDate("2026-09-01T14:30:00+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)))
}

func TestNormalizeDate_Rejects(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "32/13/2026", "tomorrow"} {
		_, err := NormalizeDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-09-01", FormatDate(time.Date(2026, 9, 1, 18, 4, 0, 0, time.Local)))
}
