package select_hour

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar/models"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHourNotSelectable  = "час недоступен: сначала выберите день, час должен быть свободен и в пределах 9:00-17:00"
)

type Handler struct {
	calendars CalendarRegistry
	logger    Logger
}

func NewHandler(calendars CalendarRegistry, logger Logger) *Handler {
	return &Handler{
		calendars: calendars,
		logger:    logger,
	}
}

// Handle POST /api/v1/calendar/select-hour
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req SelectHourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/select-hour - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cal := h.calendars.Get(session)
	if !cal.SelectHour(req.Hour) {
		h.logger.Info("POST /calendar/select-hour - Hour %d not selectable: account_id=%d", req.Hour, session.AccountID)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgHourNotSelectable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSlots(cal.Selection(), cal.Slots()))
}
