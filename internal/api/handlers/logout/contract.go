package logout

import "net/http"

type AuthService interface {
	Logout(sessionID string) error
}

// CalendarRegistry календари сессий; при выходе календарь сессии удаляется
type CalendarRegistry interface {
	Drop(sessionID string)
}

type SessionCookies interface {
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
