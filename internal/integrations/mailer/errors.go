package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API ключ SendGrid
	ErrNotConfigured = errors.New("mailer: sendgrid api key is not configured")

	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("mailer: failed to send email")
)
