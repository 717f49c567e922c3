package middleware

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// SessionResolver проверяет ID сессии и возвращает активную сессию
type SessionResolver interface {
	Resolve(sessionID string) (*domain.Session, error)
}

// SessionCookies достаёт ID сессии из cookie запроса
type SessionCookies interface {
	Read(r *http.Request) (string, error)
	Clear(w http.ResponseWriter)
}

// HTTPMetrics сборщик метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(route, method string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
