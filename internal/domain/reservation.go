package domain

import "time"

// ReservationStatus represents the status of a consultation reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// IsValid returns true if the status is one of the known statuses
func (s ReservationStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// CommunicationMethod represents how the consultation is held
type CommunicationMethod string

const (
	MethodVisio CommunicationMethod = "VISIO"
	MethodPhone CommunicationMethod = "PHONE"
)

// IsValid returns true if the method is one of the known methods
func (m CommunicationMethod) IsValid() bool {
	return m == MethodVisio || m == MethodPhone
}

// ReservationType represents the kind of consultation being booked
type ReservationType string

const (
	TypeDiscovery    ReservationType = "DISCOVERY"
	TypeConsultation ReservationType = "CONSULTATION"
	TypePresentation ReservationType = "PRESENTATION"
	TypeFollowup     ReservationType = "FOLLOWUP"
)

// IsValid returns true if the type is one of the known types
func (t ReservationType) IsValid() bool {
	switch t {
	case TypeDiscovery, TypeConsultation, TypePresentation, TypeFollowup:
		return true
	}
	return false
}

// Reservation represents a client consultation reservation
type Reservation struct {
	ID   int64
	Code string // Публичный идентификатор (UUID), используется в письмах

	ClientName         string
	ClientEmail        string
	ClientPhone        *string
	ProjectDescription string

	CommunicationMethod CommunicationMethod
	ReservationType     ReservationType

	StartTime time.Time
	EndTime   time.Time
	Status    ReservationStatus

	AdminNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still blocks its time window
// Only cancelled reservations are excluded from availability checks
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeConfirmed returns true if the reservation can be confirmed
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the reservation can be moved to another window
func (r *Reservation) CanBeRescheduled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// ReservationsFilter фильтр для получения списка бронирований
type ReservationsFilter struct {
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	IncludeCancelled bool               // Включать ли отмененные бронирования
}
