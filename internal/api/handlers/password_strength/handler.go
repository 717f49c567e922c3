package password_strength

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	checker PasswordChecker
}

func NewHandler(checker PasswordChecker) *Handler {
	return &Handler{checker: checker}
}

// Handle POST /api/v1/auth/password-strength
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(h.checker.CheckPassword(req.Password)))
}
