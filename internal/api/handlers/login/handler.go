package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "укажите email и пароль"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	service AuthService
	cookies SessionCookies
	logger  Logger
}

func NewHandler(service AuthService, cookies SessionCookies, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if err := h.cookies.Set(w, r, result.SessionID, result.ExpiresAt); err != nil {
		h.logger.Error("POST /auth/login - Failed to set session cookie: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - Signed in: account_id=%d", result.Account.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
