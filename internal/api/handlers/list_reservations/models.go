package list_reservations

import (
	"net/url"
	"strconv"
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	"github.com/kairodigital/KD-BookingService/internal/service/reservations/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
// Поддерживаются: status, startDate, endDate (YYYY-MM-DD), includeCancelled
func ToServiceRequest(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.ParseInLocation(domain.DateFormat, startDateStr, time.Local)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.ParseInLocation(domain.DateFormat, endDateStr, time.Local)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if includeCancelledStr := query.Get("includeCancelled"); includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
