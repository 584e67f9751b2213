package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "clock should not be behind")
	assert.False(t, now.After(after), "clock should not be ahead")
}

func TestMockClock_Now(t *testing.T) {
	fixed := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixed)

	assert.Equal(t, fixed, clock.Now())
	assert.Equal(t, fixed, clock.Now(), "repeated calls return the same time")
}

func TestMockClock_Set(t *testing.T) {
	clock := NewMockClock(time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC))

	later := time.Date(2026, 9, 16, 8, 0, 0, 0, time.UTC)
	clock.Set(later)

	assert.Equal(t, later, clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	clock.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), clock.Now())

	clock.Advance(-30 * time.Minute)
	assert.Equal(t, start.Add(time.Hour), clock.Now(), "negative advance moves backward")
}

func TestGetLocation(t *testing.T) {
	loc, err := GetLocation("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	// Second call hits the cache and returns the identical pointer.
	cached, err := GetLocation("America/New_York")
	require.NoError(t, err)
	assert.Same(t, loc, cached)
}

func TestGetLocation_Invalid(t *testing.T) {
	_, err := GetLocation("Middle/Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Middle/Nowhere")
}

func TestMustGetLocation(t *testing.T) {
	assert.NotPanics(t, func() {
		loc := MustGetLocation("UTC")
		assert.Equal(t, time.UTC, loc)
	})

	assert.Panics(t, func() {
		MustGetLocation("Middle/Nowhere")
	})
}

func TestStartOfDay(t *testing.T) {
	loc := MustGetLocation("America/New_York")

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midday UTC",
			in:   time.Date(2026, 9, 15, 14, 45, 30, 999, time.UTC),
			want: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already midnight",
			in:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "keeps the location",
			in:   time.Date(2026, 9, 15, 23, 59, 0, 0, loc),
			want: time.Date(2026, 9, 15, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfDay(tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, tt.in.Location(), got.Location())
		})
	}
}

func TestDayWindow(t *testing.T) {
	in := time.Date(2026, 9, 15, 14, 45, 0, 0, time.UTC)

	start, end := DayWindow(in)

	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

// TestDayWindow_DSTTransition verifies the window spans the calendar day even
// when a daylight saving shift makes the day 23 or 25 hours long.
func TestDayWindow_DSTTransition(t *testing.T) {
	loc := MustGetLocation("America/New_York")

	// 2026-03-08 is the spring-forward date in the US (23-hour day).
	in := time.Date(2026, 3, 8, 12, 0, 0, 0, loc)
	start, end := DayWindow(in)

	assert.Equal(t, 8, start.Day())
	assert.Equal(t, 9, end.Day())
	assert.Equal(t, 23*time.Hour, end.Sub(start), "spring-forward day is one hour short")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-09-15", FormatDate(time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01-05", FormatDate(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
}
