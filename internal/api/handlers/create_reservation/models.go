package create_reservation

import (
	"time"

	createReservation "github.com/kairodigital/KD-BookingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ClientName          string  `json:"clientName"`
	ClientEmail         string  `json:"clientEmail"`
	ClientPhone         *string `json:"clientPhone,omitempty"`
	ProjectDescription  string  `json:"projectDescription"`
	CommunicationMethod string  `json:"communicationMethod"`
	ReservationType     string  `json:"reservationType"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		ClientName:          r.ClientName,
		ClientEmail:         r.ClientEmail,
		ClientPhone:         r.ClientPhone,
		ProjectDescription:  r.ProjectDescription,
		CommunicationMethod: r.CommunicationMethod,
		ReservationType:     r.ReservationType,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
	}
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	ID                  int64     `json:"id"`
	Code                string    `json:"code"`
	ClientName          string    `json:"clientName"`
	ClientEmail         string    `json:"clientEmail"`
	ClientPhone         *string   `json:"clientPhone,omitempty"`
	ProjectDescription  string    `json:"projectDescription"`
	CommunicationMethod string    `json:"communicationMethod"`
	ReservationType     string    `json:"reservationType"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		ID:                  resp.ID,
		Code:                resp.Code,
		ClientName:          resp.ClientName,
		ClientEmail:         resp.ClientEmail,
		ClientPhone:         resp.ClientPhone,
		ProjectDescription:  resp.ProjectDescription,
		CommunicationMethod: resp.CommunicationMethod,
		ReservationType:     resp.ReservationType,
		StartTime:           resp.StartTime,
		EndTime:             resp.EndTime,
		Status:              resp.Status,
		CreatedAt:           resp.CreatedAt,
	}
}
