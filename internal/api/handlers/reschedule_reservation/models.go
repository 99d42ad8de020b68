package reschedule_reservation

import (
	"time"

	"github.com/kairodigital/KD-BookingService/internal/service/reservations/models"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RescheduleRequest) ToServiceRequest() *models.RescheduleRequest {
	return &models.RescheduleRequest{
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
