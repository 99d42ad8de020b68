package domain

import "fmt"

// BookingSettings represents the configurable booking rules
// Stored in the site_settings table; invalid or missing values always fall
// back to DefaultBookingSettings so that the booking flow never breaks
type BookingSettings struct {
	MinimumNoticeHours    int  // Минимальный срок до начала слота (в часах)
	MaxAdvanceBookingDays int  // Максимальный горизонт бронирования (в днях)
	AllowWeekendBookings  bool // Разрешены ли бронирования в выходные
	SlotDurationMinutes   int  // Длительность слота в минутах
}

// DefaultBookingSettings returns the safe fallback configuration
func DefaultBookingSettings() BookingSettings {
	return BookingSettings{
		MinimumNoticeHours:    DefaultMinimumNoticeHours,
		MaxAdvanceBookingDays: DefaultMaxAdvanceBookingDays,
		AllowWeekendBookings:  DefaultAllowWeekendBookings,
		SlotDurationMinutes:   DefaultSlotDurationMinutes,
	}
}

// Validate проверяет корректность настроек бронирования
func (s BookingSettings) Validate() error {
	if s.MinimumNoticeHours < 0 {
		return fmt.Errorf("booking settings: minimumNoticeHours must be non-negative, got %d", s.MinimumNoticeHours)
	}
	if s.MaxAdvanceBookingDays <= 0 {
		return fmt.Errorf("booking settings: maxAdvanceBookingDays must be positive, got %d", s.MaxAdvanceBookingDays)
	}
	if s.SlotDurationMinutes <= 0 {
		return fmt.Errorf("booking settings: slotDurationMinutes must be positive, got %d", s.SlotDurationMinutes)
	}
	return nil
}
