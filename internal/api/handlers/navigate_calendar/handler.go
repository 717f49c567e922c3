package navigate_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar/models"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDirection   = "direction должен быть next или previous"
	msgLoadFailed         = "не удалось загрузить занятые слоты, попробуйте позже"
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

// Handle POST /api/v1/calendar/navigate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/navigate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cal := h.calendars.Get(session)

	switch req.Direction {
	case DirectionNext:
		cal.NextMonth()
	case DirectionPrevious:
		cal.PreviousMonth()
	default:
		handlers.RespondBadRequest(w, msgInvalidDirection)
		return
	}

	if err := cal.Load(r.Context()); err != nil {
		if errors.Is(err, calendar.ErrLoadFailed) {
			h.logger.Warn("POST /calendar/navigate - Bookings unavailable: account_id=%d, error=%v", session.AccountID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgLoadFailed)
			return
		}
		h.logger.Error("POST /calendar/navigate - Failed to load calendar: account_id=%d, error=%v", session.AccountID, err)
		handlers.RespondInternalError(w)
		return
	}

	year, month := cal.Month()
	h.logger.Info("POST /calendar/navigate - account_id=%d moved to %04d-%02d", session.AccountID, year, month)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainMonth(year, month, cal.Grid(), cal.Selection()))
}
