package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент отправки email уведомлений через SendGrid
type Client struct {
	apiKey     string
	fromEmail  string
	fromName   string
	adminEmail string
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
// Пустой apiKey допустим: отправка в этом случае возвращает ErrNotConfigured,
// а вызывающая сторона логирует и продолжает работу
func NewClient(apiKey, fromEmail, fromName, adminEmail string, log Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
		log:        log,
	}
}

// SendReservationCreated отправляет письма о новой заявке:
// подтверждение получения клиенту и уведомление администратору
func (c *Client) SendReservationCreated(reservation *domain.Reservation) error {
	clientSubject, clientText, clientHTML := reservationCreatedClientMessage(reservation)
	if err := c.send(reservation.ClientEmail, reservation.ClientName, clientSubject, clientText, clientHTML); err != nil {
		return err
	}

	adminSubject, adminText, adminHTML := reservationCreatedAdminMessage(reservation)
	return c.send(c.adminEmail, "", adminSubject, adminText, adminHTML)
}

// SendReservationStatusChanged отправляет клиенту письмо об изменении
// статуса бронирования (подтверждено / отменено)
func (c *Client) SendReservationStatusChanged(reservation *domain.Reservation) error {
	subject, text, html := reservationStatusMessage(reservation)
	return c.send(reservation.ClientEmail, reservation.ClientName, subject, text, html)
}

// SendReservationRescheduled отправляет клиенту письмо о переносе бронирования
func (c *Client) SendReservationRescheduled(reservation *domain.Reservation) error {
	subject, text, html := reservationRescheduledMessage(reservation)
	return c.send(reservation.ClientEmail, reservation.ClientName, subject, text, html)
}

// SendReservationReminder отправляет клиенту напоминание о консультации
func (c *Client) SendReservationReminder(reservation *domain.Reservation) error {
	subject, text, html := reservationReminderMessage(reservation)
	return c.send(reservation.ClientEmail, reservation.ClientName, subject, text, html)
}

func (c *Client) send(toEmail, toName, subject, plainText, htmlContent string) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("%w: sendgrid returned status %d: %s", ErrSendFailed, response.StatusCode, response.Body)
	}

	c.log.Info("Email sent to %s (subject: %s)", toEmail, subject)
	return nil
}
