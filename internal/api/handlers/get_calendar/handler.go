package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar/models"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgInvalidMonth = "некорректный месяц, ожидаются year и month (1-12)"
	msgLoadFailed   = "не удалось загрузить занятые слоты, попробуйте позже"
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

// Handle GET /api/v1/calendar?year=2026&month=11
// Без параметров отдаёт текущий отображаемый месяц сессии.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	cal := h.calendars.Get(session)

	query := r.URL.Query()
	if query.Has("year") || query.Has("month") {
		year, month, err := parseMonth(query.Get("year"), query.Get("month"))
		if err == nil {
			err = cal.GoTo(year, month)
		}
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
	}

	if err := cal.Load(r.Context()); err != nil {
		if errors.Is(err, calendar.ErrLoadFailed) {
			h.logger.Warn("GET /calendar - Bookings unavailable: account_id=%d, error=%v", session.AccountID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgLoadFailed)
			return
		}
		h.logger.Error("GET /calendar - Failed to load calendar: account_id=%d, error=%v", session.AccountID, err)
		handlers.RespondInternalError(w)
		return
	}

	year, month := cal.Month()
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainMonth(year, month, cal.Grid(), cal.Selection()))
}

func parseMonth(yearStr, monthStr string) (int, time.Month, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, err
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, err
	}
	return year, time.Month(month), nil
}
