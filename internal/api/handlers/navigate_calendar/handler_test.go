package navigate_calendar

import (
	"context"
	"encoding/json"
	"errors"
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

type fakeStore struct {
	from, to time.Time
	err      error
}

func (s *fakeStore) FetchBookings(_ context.Context, from, to time.Time) ([]domain.Booking, error) {
	s.from, s.to = from, to
	return nil, s.err
}

func (s *fakeStore) SubmitBooking(context.Context, domain.BookingRequest) error { return nil }

var session = &domain.Session{ID: "s-1", AccountID: 7}

func setup(store *fakeStore, now time.Time) *Handler {
	registry := calendar.NewRegistry(func(s *domain.Session) *calendar.Calendar {
		return calendar.NewWithClock(s.AccountID, store, store, fixedClock{now: now}, nopLogger{})
	})
	return NewHandler(registry, nopLogger{})
}

func post(h *Handler, body string, withSession bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/navigate", strings.NewReader(body))
	if withSession {
		req = req.WithContext(middleware.WithSession(req.Context(), session))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_NextRollsOverYear(t *testing.T) {
	store := &fakeStore{}
	h := setup(store, time.Date(2026, time.December, 5, 9, 0, 0, 0, time.UTC))

	rec := post(h, `{"direction":"next"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MonthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2027, resp.Year)
	assert.Equal(t, 1, resp.Month)
	assert.Equal(t, "January 2027", resp.Title)
	assert.Len(t, resp.Days, domain.GridCells)

	assert.Equal(t, "2027-01-01", domain.DateKey(store.from))
	assert.Equal(t, "2027-01-31", domain.DateKey(store.to))
}

func TestHandler_PreviousRollsBackYear(t *testing.T) {
	h := setup(&fakeStore{}, time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC))

	rec := post(h, `{"direction":"previous"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MonthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 12, resp.Month)
}

func TestHandler_Errors(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		body        string
		withSession bool
		storeErr    error
		wantStatus  int
	}{
		{"no session", `{"direction":"next"}`, false, nil, http.StatusUnauthorized},
		{"empty body", ``, true, nil, http.StatusBadRequest},
		{"unknown direction", `{"direction":"sideways"}`, true, nil, http.StatusBadRequest},
		{"source unavailable", `{"direction":"next"}`, true, errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(setup(&fakeStore{err: tt.storeErr}, now), tt.body, tt.withSession)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
