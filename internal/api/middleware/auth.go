package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ctcplatform/CTC-VoiceService/internal/api/handlers"
)

const serviceTokenHeader = "X-Service-Token"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// ServiceAuth возвращает middleware, проверяющий сервисный токен
// management-эндпоинтов. Webhook-роуты голосовой платформы этим
// middleware не закрываются.
func ServiceAuth(token string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(serviceTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				log.Warn("Auth: rejected management request: method=%s, path=%s, remote=%s",
					r.Method, r.URL.Path, r.RemoteAddr)
				handlers.RespondUnauthorized(w, "invalid service token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
