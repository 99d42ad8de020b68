package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, ReservationStatus("UNKNOWN").IsValid())
	assert.False(t, ReservationStatus("").IsValid())
}

func TestCommunicationMethodIsValid(t *testing.T) {
	assert.True(t, MethodVisio.IsValid())
	assert.True(t, MethodPhone.IsValid())
	assert.False(t, CommunicationMethod("TELEPATHY").IsValid())
}

func TestReservationTypeIsValid(t *testing.T) {
	assert.True(t, TypeDiscovery.IsValid())
	assert.True(t, TypeConsultation.IsValid())
	assert.True(t, TypePresentation.IsValid())
	assert.True(t, TypeFollowup.IsValid())
	assert.False(t, ReservationType("AUDIT").IsValid())
}

func TestReservationIsActive(t *testing.T) {
	// Слот блокируют и PENDING, и CONFIRMED бронирования
	assert.True(t, (&Reservation{Status: StatusPending}).IsActive())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCancelled}).IsActive())
}

func TestReservationTransitions(t *testing.T) {
	pending := &Reservation{Status: StatusPending}
	confirmed := &Reservation{Status: StatusConfirmed}
	cancelled := &Reservation{Status: StatusCancelled}

	assert.True(t, pending.CanBeConfirmed())
	assert.False(t, confirmed.CanBeConfirmed())
	assert.False(t, cancelled.CanBeConfirmed())

	assert.True(t, pending.CanBeCancelled())
	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, pending.CanBeRescheduled())
	assert.True(t, confirmed.CanBeRescheduled())
	assert.False(t, cancelled.CanBeRescheduled())
}
