package create_reservation

import (
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientName          string
	ClientEmail         string
	ClientPhone         *string
	ProjectDescription  string
	CommunicationMethod string
	ReservationType     string
	StartTime           time.Time
	EndTime             time.Time
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                  int64
	Code                string
	ClientName          string
	ClientEmail         string
	ClientPhone         *string
	ProjectDescription  string
	CommunicationMethod string
	ReservationType     string
	StartTime           time.Time
	EndTime             time.Time
	Status              string
	CreatedAt           time.Time
}

// fromDomainReservation конвертирует domain модель в ответ use case
func fromDomainReservation(r *domain.Reservation) *Response {
	return &Response{
		ID:                  r.ID,
		Code:                r.Code,
		ClientName:          r.ClientName,
		ClientEmail:         r.ClientEmail,
		ClientPhone:         r.ClientPhone,
		ProjectDescription:  r.ProjectDescription,
		CommunicationMethod: string(r.CommunicationMethod),
		ReservationType:     string(r.ReservationType),
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt,
	}
}
