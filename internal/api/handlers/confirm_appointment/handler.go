package confirm_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar/models"
)

const (
	msgUnauthorized        = "требуется авторизация"
	msgIncompleteSelection = "выберите день и час записи"
	msgSlotTaken           = "этот час уже заняли, выберите другое время"
	msgSubmissionFailed    = "не удалось сохранить запись, попробуйте ещё раз"
)

type Handler struct {
	calendars CalendarRegistry
	metrics   AppointmentMetrics
	logger    Logger
}

func NewHandler(calendars CalendarRegistry, metrics AppointmentMetrics, logger Logger) *Handler {
	return &Handler{
		calendars: calendars,
		metrics:   metrics,
		logger:    logger,
	}
}

// Handle POST /api/v1/calendar/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	booking, err := h.calendars.Get(session).Confirm(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrIncompleteSelection):
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, domain.ErrSlotTaken):
			h.metrics.SubmissionFailed()
			h.logger.Warn("POST /calendar/confirm - Slot taken: account_id=%d, error=%v", session.AccountID, err)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, calendar.ErrSubmissionFailed):
			h.metrics.SubmissionFailed()
			h.logger.Error("POST /calendar/confirm - Submission failed: account_id=%d, error=%v", session.AccountID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

		default:
			h.logger.Error("POST /calendar/confirm - Failed to confirm: account_id=%d, error=%v", session.AccountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.AppointmentConfirmed()
	h.logger.Info("POST /calendar/confirm - Appointment confirmed: account_id=%d, date=%s, hour=%d",
		session.AccountID, domain.DateKey(booking.Date), booking.Hour)
	handlers.RespondJSON(w, http.StatusCreated, models.BookingResponse{
		Date:  domain.DateKey(booking.Date),
		Hour:  booking.Hour,
		Label: calendar.FormatTimeDisplay(booking.Hour),
	})
}
