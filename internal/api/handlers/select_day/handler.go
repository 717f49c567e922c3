package select_day

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar/models"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDayNotSelectable   = "день недоступен для выбора: он в прошлом или вне отображаемого месяца"
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

// Handle POST /api/v1/calendar/select-day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req SelectDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/select-day - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	selection, slots, selected := h.calendars.Get(session).SelectDate(date)
	if !selected {
		h.logger.Info("POST /calendar/select-day - Day %s not selectable: account_id=%d", req.Date, session.AccountID)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgDayNotSelectable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSlots(selection, slots))
}
