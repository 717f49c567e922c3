package select_hour

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeStore struct{}

func (fakeStore) FetchBookings(context.Context, time.Time, time.Time) ([]domain.Booking, error) {
	return []domain.Booking{{DateKey: "2026-10-21", BookedHours: []int{9, 10, 14}}}, nil
}

func (fakeStore) SubmitBooking(context.Context, domain.BookingRequest) error { return nil }

var session = &domain.Session{ID: "s-1", AccountID: 7}

// setup возвращает handler и календарь сессии; при selectDay выбран 21 октября
func setup(t *testing.T, selectDay bool) *Handler {
	t.Helper()

	now := time.Date(2026, time.October, 19, 10, 30, 0, 0, time.UTC)
	registry := calendar.NewRegistry(func(s *domain.Session) *calendar.Calendar {
		return calendar.NewWithClock(s.AccountID, fakeStore{}, fakeStore{}, fixedClock{now: now}, nopLogger{})
	})

	cal := registry.Get(session)
	require.NoError(t, cal.Load(context.Background()))
	if selectDay {
		_, _, ok := cal.SelectDate(time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC))
		require.True(t, ok)
	}

	return NewHandler(registry, nopLogger{})
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/select-hour", strings.NewReader(body))
	req = req.WithContext(middleware.WithSession(req.Context(), session))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_SelectFreeHour(t *testing.T) {
	rec := post(setup(t, true), `{"hour":11}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Selection.Hour)
	assert.Equal(t, 11, *resp.Selection.Hour)
	require.NotNil(t, resp.Selection.Date)
	assert.Equal(t, "2026-10-21", *resp.Selection.Date)
	assert.Equal(t, 6, resp.FreeSlots)
}

func TestHandler_NotSelectable(t *testing.T) {
	tests := []struct {
		name      string
		selectDay bool
		body      string
	}{
		{"no day selected", false, `{"hour":11}`},
		{"booked hour", true, `{"hour":10}`},
		{"before window", true, `{"hour":8}`},
		{"after window", true, `{"hour":18}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(setup(t, tt.selectDay), tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	rec := post(setup(t, true), `{"hour":"eleven"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
