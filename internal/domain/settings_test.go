package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBookingSettings(t *testing.T) {
	settings := DefaultBookingSettings()

	assert.Equal(t, 24, settings.MinimumNoticeHours)
	assert.Equal(t, 30, settings.MaxAdvanceBookingDays)
	assert.True(t, settings.AllowWeekendBookings)
	assert.Equal(t, 60, settings.SlotDurationMinutes)
	assert.NoError(t, settings.Validate())
}

func TestBookingSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings BookingSettings
		wantErr  bool
	}{
		{"valid", BookingSettings{MinimumNoticeHours: 24, MaxAdvanceBookingDays: 30, SlotDurationMinutes: 60}, false},
		{"zero notice is allowed", BookingSettings{MinimumNoticeHours: 0, MaxAdvanceBookingDays: 1, SlotDurationMinutes: 30}, false},
		{"negative notice", BookingSettings{MinimumNoticeHours: -1, MaxAdvanceBookingDays: 30, SlotDurationMinutes: 60}, true},
		{"zero advance days", BookingSettings{MinimumNoticeHours: 24, MaxAdvanceBookingDays: 0, SlotDurationMinutes: 60}, true},
		{"zero slot duration", BookingSettings{MinimumNoticeHours: 24, MaxAdvanceBookingDays: 30, SlotDurationMinutes: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
