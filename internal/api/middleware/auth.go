package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/domain"
)

const (
	msgUnauthorized   = "требуется авторизация"
	msgSessionExpired = "сессия истекла, войдите снова"
)

type ctxKey int

const sessionKey ctxKey = iota

// WithSession кладёт сессию в контекст запроса
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext возвращает сессию, положенную Auth middleware
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*domain.Session)
	return session, ok && session != nil
}

// Auth пропускает только запросы с действующей сессией в cookie.
// expired - ошибка резолвера, означающая истёкшую сессию.
func Auth(cookies SessionCookies, resolver SessionResolver, expired error, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, err := cookies.Read(r)
			if err != nil {
				logger.Warn("%s %s - no valid session cookie: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			session, err := resolver.Resolve(sessionID)
			if err != nil {
				cookies.Clear(w)
				if expired != nil && errors.Is(err, expired) {
					handlers.RespondUnauthorized(w, msgSessionExpired)
					return
				}
				logger.Warn("%s %s - session rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}
