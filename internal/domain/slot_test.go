package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}

func TestNewTimeWindow(t *testing.T) {
	start := mustTime(t, "2025-06-11 09:00")
	window := NewTimeWindow(start, 60*time.Minute)

	assert.Equal(t, start, window.Start)
	assert.Equal(t, mustTime(t, "2025-06-11 10:00"), window.End)
}

func TestTimeWindowOverlaps(t *testing.T) {
	// Окно 11:00-12:00
	window := NewTimeWindow(mustTime(t, "2025-06-11 11:00"), 60*time.Minute)

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"interval before window", "2025-06-11 09:00", "2025-06-11 10:00", false},
		{"interval touching window start", "2025-06-11 10:00", "2025-06-11 11:00", false},
		{"interval inside window", "2025-06-11 11:30", "2025-06-11 11:45", true},
		{"interval covering window", "2025-06-11 10:00", "2025-06-11 13:00", true},
		{"interval equal to window", "2025-06-11 11:00", "2025-06-11 12:00", true},
		{"interval overlapping start", "2025-06-11 10:30", "2025-06-11 11:30", true},
		{"interval overlapping end", "2025-06-11 11:30", "2025-06-11 12:30", true},
		{"interval touching window end", "2025-06-11 12:00", "2025-06-11 13:00", false},
		{"interval after window", "2025-06-11 13:00", "2025-06-11 14:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := window.Overlaps(mustTime(t, tt.start), mustTime(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeWindowOverlapsWindow(t *testing.T) {
	first := NewTimeWindow(mustTime(t, "2025-06-11 11:00"), 60*time.Minute)
	second := NewTimeWindow(mustTime(t, "2025-06-11 12:00"), 60*time.Minute)
	third := NewTimeWindow(mustTime(t, "2025-06-11 11:30"), 60*time.Minute)

	assert.False(t, first.OverlapsWindow(second))
	assert.False(t, second.OverlapsWindow(first))
	assert.True(t, first.OverlapsWindow(third))
	assert.True(t, third.OverlapsWindow(second))
}
