package login

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

type SessionCookies interface {
	Set(w http.ResponseWriter, r *http.Request, sessionID string, expiresAt time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
