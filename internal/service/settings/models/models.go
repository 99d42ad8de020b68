package models

import "github.com/kairodigital/KD-BookingService/internal/domain"

// UpdateSettingsRequest запрос на обновление настроек бронирования
type UpdateSettingsRequest struct {
	MinimumNoticeHours    int  `json:"minimumNoticeHours"`
	MaxAdvanceBookingDays int  `json:"maxAdvanceBookingDays"`
	AllowWeekendBookings  bool `json:"allowWeekendBookings"`
	SlotDurationMinutes   int  `json:"slotDurationMinutes"`
}

// ToDomainSettings конвертирует request в domain модель
func (r *UpdateSettingsRequest) ToDomainSettings() domain.BookingSettings {
	return domain.BookingSettings{
		MinimumNoticeHours:    r.MinimumNoticeHours,
		MaxAdvanceBookingDays: r.MaxAdvanceBookingDays,
		AllowWeekendBookings:  r.AllowWeekendBookings,
		SlotDurationMinutes:   r.SlotDurationMinutes,
	}
}

// SettingsResponse ответ с настройками бронирования
type SettingsResponse struct {
	MinimumNoticeHours    int  `json:"minimumNoticeHours"`
	MaxAdvanceBookingDays int  `json:"maxAdvanceBookingDays"`
	AllowWeekendBookings  bool `json:"allowWeekendBookings"`
	SlotDurationMinutes   int  `json:"slotDurationMinutes"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s domain.BookingSettings) *SettingsResponse {
	return &SettingsResponse{
		MinimumNoticeHours:    s.MinimumNoticeHours,
		MaxAdvanceBookingDays: s.MaxAdvanceBookingDays,
		AllowWeekendBookings:  s.AllowWeekendBookings,
		SlotDurationMinutes:   s.SlotDurationMinutes,
	}
}
