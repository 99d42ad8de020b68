package update_booking_settings

import "github.com/kairodigital/KD-BookingService/internal/service/settings/models"

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	MinimumNoticeHours    int  `json:"minimumNoticeHours"`
	MaxAdvanceBookingDays int  `json:"maxAdvanceBookingDays"`
	AllowWeekendBookings  bool `json:"allowWeekendBookings"`
	SlotDurationMinutes   int  `json:"slotDurationMinutes"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		MinimumNoticeHours:    r.MinimumNoticeHours,
		MaxAdvanceBookingDays: r.MaxAdvanceBookingDays,
		AllowWeekendBookings:  r.AllowWeekendBookings,
		SlotDurationMinutes:   r.SlotDurationMinutes,
	}
}
