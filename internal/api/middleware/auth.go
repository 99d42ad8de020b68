package middleware

import (
	"net/http"

	"github.com/kairodigital/KD-BookingService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// RequireUser закрывает административные эндпоинты
// Запрос без заголовка X-User-ID отклоняется с 401: аутентификацию
// выполняет API gateway, сервис доверяет проставленному заголовку
func RequireUser(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(userIDHeader) == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, userIDHeader)
				handlers.RespondUnauthorized(w, "требуется аутентификация")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
