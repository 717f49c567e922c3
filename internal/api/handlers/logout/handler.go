package logout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/service/auth"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgLoggedOut    = "вы вышли из аккаунта"
)

type Handler struct {
	service   AuthService
	calendars CalendarRegistry
	cookies   SessionCookies
	logger    Logger
}

func NewHandler(service AuthService, calendars CalendarRegistry, cookies SessionCookies, logger Logger) *Handler {
	return &Handler{
		service:   service,
		calendars: calendars,
		cookies:   cookies,
		logger:    logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Сессия могла истечь между middleware и handler - выход всё равно успешен
	if err := h.service.Logout(session.ID); err != nil && !errors.Is(err, auth.ErrSessionNotFound) {
		h.logger.Error("POST /auth/logout - Failed to logout: account_id=%d, error=%v", session.AccountID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.calendars.Drop(session.ID)
	h.cookies.Clear(w)

	h.logger.Info("POST /auth/logout - Signed out: account_id=%d", session.AccountID)
	handlers.RespondJSON(w, http.StatusOK, LogoutResponse{Message: msgLoggedOut})
}
