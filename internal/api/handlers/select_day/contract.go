package select_day

import (
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar"
)

// CalendarRegistry календарь текущей сессии
type CalendarRegistry interface {
	Get(session *domain.Session) *calendar.Calendar
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
