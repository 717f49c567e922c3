package get_time_slots

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar/models"
)

const msgUnauthorized = "требуется авторизация"

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

// Handle GET /api/v1/calendar/slots
// Пока день не выбран, список слотов пуст.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	cal := h.calendars.Get(session)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSlots(cal.Selection(), cal.Slots()))
}
