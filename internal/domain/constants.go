package domain

// Business hours boundaries (local time)
// Захардкожены намеренно: рабочие часы агентства не являются частью
// настроек бронирования и меняются только релизом
const (
	BusinessDayStartHour = 9
	BusinessDayEndHour   = 18
)

// Default booking settings values (safe fallback)
const (
	DefaultMinimumNoticeHours    = 24
	DefaultMaxAdvanceBookingDays = 30
	DefaultAllowWeekendBookings  = true
	DefaultSlotDurationMinutes   = 60
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
