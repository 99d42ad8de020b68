package domain

import "time"

// TimeWindow represents a bookable time window within a business day
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow creates a window of the given duration starting at start
func NewTimeWindow(start time.Time, duration time.Duration) TimeWindow {
	return TimeWindow{Start: start, End: start.Add(duration)}
}

// Overlaps проверяет пересечение окна с интервалом [start, end)
// Интервалы пересекаются, только если start строго раньше конца окна
// и end строго позже начала окна. Граничащие интервалы не пересекаются:
//   - Окно 11:00-12:00, интервал 10:00-11:00 → НЕТ пересечения
//   - Окно 11:00-12:00, интервал 11:30-11:45 → ЕСТЬ пересечение
//   - Окно 11:00-12:00, интервал 10:00-13:00 → ЕСТЬ пересечение
func (w TimeWindow) Overlaps(start, end time.Time) bool {
	return start.Before(w.End) && end.After(w.Start)
}

// OverlapsWindow проверяет пересечение двух окон
func (w TimeWindow) OverlapsWindow(other TimeWindow) bool {
	return w.Overlaps(other.Start, other.End)
}
