package mailer

import (
	"fmt"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// Шаблоны писем. Продукт французский, поэтому клиентские письма на французском

const dateTimeFormat = "02/01/2006 15:04"

func reservationCreatedClientMessage(r *domain.Reservation) (subject, text, html string) {
	subject = "Confirmation de votre demande de consultation"

	text = fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Nous avons bien reçu votre demande de consultation. "+
			"Un membre de notre équipe va confirmer rapidement ce rendez-vous.\n\n"+
			"Date : %s\nHeure : %s - %s\nRéférence : %s\n\n"+
			"Merci de votre confiance.\n\nL'équipe KAIRO Digital",
		r.ClientName,
		r.StartTime.Format("02/01/2006"),
		r.StartTime.Format(domain.TimeFormat),
		r.EndTime.Format(domain.TimeFormat),
		r.Code,
	)

	html = fmt.Sprintf(
		`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3b82f6;">Confirmation de votre demande de consultation</h2>
  <p>Bonjour %s,</p>
  <p>Nous avons bien reçu votre demande de consultation. Un membre de notre équipe va confirmer rapidement ce rendez-vous.</p>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Date :</strong> %s</p>
    <p><strong>Heure :</strong> %s - %s</p>
    <p><strong>Type de consultation :</strong> %s</p>
    <p><strong>Référence :</strong> %s</p>
  </div>
  <p>Merci de votre confiance.</p>
  <p>L'équipe KAIRO Digital</p>
</div>`,
		r.ClientName,
		r.StartTime.Format("02/01/2006"),
		r.StartTime.Format(domain.TimeFormat),
		r.EndTime.Format(domain.TimeFormat),
		r.ReservationType,
		r.Code,
	)

	return subject, text, html
}

func reservationCreatedAdminMessage(r *domain.Reservation) (subject, text, html string) {
	subject = "Nouvelle demande de consultation"

	phone := "-"
	if r.ClientPhone != nil {
		phone = *r.ClientPhone
	}

	text = fmt.Sprintf(
		"Nouvelle demande de consultation de %s (%s).\n\n"+
			"Créneau : %s - %s\nTéléphone : %s\nMéthode : %s\nType : %s\n\n"+
			"Description du projet :\n%s\n\nRéférence : %s",
		r.ClientName, r.ClientEmail,
		r.StartTime.Format(dateTimeFormat), r.EndTime.Format(domain.TimeFormat),
		phone, r.CommunicationMethod, r.ReservationType,
		r.ProjectDescription, r.Code,
	)

	html = fmt.Sprintf(
		`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Nouvelle demande de consultation</h2>
  <p><strong>Client :</strong> %s (%s)</p>
  <p><strong>Créneau :</strong> %s - %s</p>
  <p><strong>Téléphone :</strong> %s</p>
  <p><strong>Méthode :</strong> %s</p>
  <p><strong>Type :</strong> %s</p>
  <p><strong>Description du projet :</strong></p>
  <p>%s</p>
  <p><strong>Référence :</strong> %s</p>
</div>`,
		r.ClientName, r.ClientEmail,
		r.StartTime.Format(dateTimeFormat), r.EndTime.Format(domain.TimeFormat),
		phone, r.CommunicationMethod, r.ReservationType,
		r.ProjectDescription, r.Code,
	)

	return subject, text, html
}

func reservationStatusMessage(r *domain.Reservation) (subject, text, html string) {
	var statusLine string
	switch r.Status {
	case domain.StatusConfirmed:
		subject = "Votre consultation est confirmée"
		statusLine = "Votre rendez-vous a été confirmé par notre équipe."
	case domain.StatusCancelled:
		subject = "Votre consultation a été annulée"
		statusLine = "Votre rendez-vous a été annulé. N'hésitez pas à réserver un autre créneau."
	default:
		subject = "Mise à jour de votre consultation"
		statusLine = "Le statut de votre rendez-vous a été mis à jour."
	}

	text = fmt.Sprintf(
		"Bonjour %s,\n\n%s\n\nDate : %s\nHeure : %s - %s\nRéférence : %s\n\nL'équipe KAIRO Digital",
		r.ClientName, statusLine,
		r.StartTime.Format("02/01/2006"),
		r.StartTime.Format(domain.TimeFormat),
		r.EndTime.Format(domain.TimeFormat),
		r.Code,
	)

	html = fmt.Sprintf(
		`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3b82f6;">%s</h2>
  <p>Bonjour %s,</p>
  <p>%s</p>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Date :</strong> %s</p>
    <p><strong>Heure :</strong> %s - %s</p>
    <p><strong>Référence :</strong> %s</p>
  </div>
  <p>L'équipe KAIRO Digital</p>
</div>`,
		subject, r.ClientName, statusLine,
		r.StartTime.Format("02/01/2006"),
		r.StartTime.Format(domain.TimeFormat),
		r.EndTime.Format(domain.TimeFormat),
		r.Code,
	)

	return subject, text, html
}

func reservationRescheduledMessage(r *domain.Reservation) (subject, text, html string) {
	subject = "Votre consultation a été déplacée"

	text = fmt.Sprintf(
		"Bonjour %s,\n\nVotre rendez-vous a été déplacé sur un nouveau créneau.\n\n"+
			"Nouvelle date : %s\nNouvelle heure : %s - %s\nRéférence : %s\n\nL'équipe KAIRO Digital",
		r.ClientName,
		r.StartTime.Format("02/01/2006"),
		r.StartTime.Format(domain.TimeFormat),
		r.EndTime.Format(domain.TimeFormat),
		r.Code,
	)

	html = fmt.Sprintf(
		`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3b82f6;">Votre consultation a été déplacée</h2>
  <p>Bonjour %s,</p>
  <p>Votre rendez-vous a été déplacé sur un nouveau créneau.</p>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Nouvelle date :</strong> %s</p>
    <p><strong>Nouvelle heure :</strong> %s - %s</p>
    <p><strong>Référence :</strong> %s</p>
  </div>
  <p>L'équipe KAIRO Digital</p>
</div>`,
		r.ClientName,
		r.StartTime.Format("02/01/2006"),
		r.StartTime.Format(domain.TimeFormat),
		r.EndTime.Format(domain.TimeFormat),
		r.Code,
	)

	return subject, text, html
}

func reservationReminderMessage(r *domain.Reservation) (subject, text, html string) {
	subject = "Rappel : votre consultation a lieu demain"

	text = fmt.Sprintf(
		"Bonjour %s,\n\nPetit rappel : votre consultation avec KAIRO Digital a lieu demain.\n\n"+
			"Date : %s\nHeure : %s - %s\nMéthode : %s\nRéférence : %s\n\nÀ demain !\n\nL'équipe KAIRO Digital",
		r.ClientName,
		r.StartTime.Format("02/01/2006"),
		r.StartTime.Format(domain.TimeFormat),
		r.EndTime.Format(domain.TimeFormat),
		r.CommunicationMethod,
		r.Code,
	)

	html = fmt.Sprintf(
		`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3b82f6;">Rappel : votre consultation a lieu demain</h2>
  <p>Bonjour %s,</p>
  <p>Petit rappel : votre consultation avec KAIRO Digital a lieu demain.</p>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Date :</strong> %s</p>
    <p><strong>Heure :</strong> %s - %s</p>
    <p><strong>Méthode :</strong> %s</p>
    <p><strong>Référence :</strong> %s</p>
  </div>
  <p>À demain !</p>
  <p>L'équipe KAIRO Digital</p>
</div>`,
		r.ClientName,
		r.StartTime.Format("02/01/2006"),
		r.StartTime.Format(domain.TimeFormat),
		r.EndTime.Format(domain.TimeFormat),
		r.CommunicationMethod,
		r.Code,
	)

	return subject, text, html
}
