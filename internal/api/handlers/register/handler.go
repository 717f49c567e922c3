package register

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccountExists      = "аккаунт с таким email уже существует"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput), errors.Is(err, auth.ErrWeakPassword):
			h.logger.Warn("POST /auth/register - Validation failed: %v", err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, auth.ErrAccountExists):
			h.logger.Warn("POST /auth/register - Account exists: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgAccountExists)

		default:
			h.logger.Error("POST /auth/register - Failed to register: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if err := h.cookies.Set(w, r, result.SessionID, result.ExpiresAt); err != nil {
		h.logger.Error("POST /auth/register - Failed to set session cookie: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/register - Account registered: account_id=%d, type=%s",
		result.Account.ID, result.Account.AccountType)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}

// validationMessage отдаёт клиенту текст после префикса sentinel ошибки
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
