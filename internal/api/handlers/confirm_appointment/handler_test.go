package confirm_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
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
	mu        sync.Mutex
	submitted []domain.BookingRequest
	submitErr error
}

func (s *fakeStore) FetchBookings(context.Context, time.Time, time.Time) ([]domain.Booking, error) {
	return nil, nil
}

func (s *fakeStore) SubmitBooking(_ context.Context, req domain.BookingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitErr != nil {
		return s.submitErr
	}
	s.submitted = append(s.submitted, req)
	return nil
}

type countingMetrics struct {
	confirmed, failed int
}

func (m *countingMetrics) AppointmentConfirmed() { m.confirmed++ }
func (m *countingMetrics) SubmissionFailed()     { m.failed++ }

var (
	today   = time.Date(2026, time.October, 19, 10, 30, 0, 0, time.UTC)
	session = &domain.Session{ID: "s-1", AccountID: 7}
)

func setup(store *fakeStore) (*Handler, *calendar.Calendar, *countingMetrics) {
	registry := calendar.NewRegistry(func(s *domain.Session) *calendar.Calendar {
		return calendar.NewWithClock(s.AccountID, store, store, fixedClock{now: today}, nopLogger{})
	})
	m := &countingMetrics{}
	return NewHandler(registry, m, nopLogger{}), registry.Get(session), m
}

func confirm(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/confirm", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), session))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func selectSlot(t *testing.T, cal *calendar.Calendar, day, hour int) {
	t.Helper()
	_, _, ok := cal.SelectDate(time.Date(2026, time.October, day, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	require.True(t, cal.SelectHour(hour))
}

func TestHandler_Confirm(t *testing.T) {
	store := &fakeStore{}
	h, cal, m := setup(store)
	selectSlot(t, cal, 21, 14)

	rec := confirm(h)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.BookingResponse{Date: "2026-10-21", Hour: 14, Label: "2:00 PM"}, resp)

	require.Len(t, store.submitted, 1)
	assert.Equal(t, int64(7), store.submitted[0].AccountID)
	assert.Equal(t, 1, m.confirmed)
	assert.True(t, cal.Selection().IsEmpty())
}

func TestHandler_IncompleteSelection(t *testing.T) {
	store := &fakeStore{}
	h, cal, m := setup(store)

	_, _, ok := cal.SelectDate(time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)

	rec := confirm(h)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.submitted)
	assert.Zero(t, m.failed)
	assert.NotNil(t, cal.Selection().Date)
}

func TestHandler_SlotTaken(t *testing.T) {
	store := &fakeStore{submitErr: domain.ErrSlotTaken}
	h, cal, m := setup(store)
	selectSlot(t, cal, 21, 14)

	rec := confirm(h)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, m.failed)

	sel := cal.Selection()
	require.NotNil(t, sel.Hour)
	assert.Equal(t, 14, *sel.Hour)
}

func TestHandler_SubmissionFailed(t *testing.T) {
	store := &fakeStore{submitErr: context.DeadlineExceeded}
	h, cal, m := setup(store)
	selectSlot(t, cal, 21, 9)

	rec := confirm(h)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 1, m.failed)
	assert.True(t, cal.Selection().IsComplete())
}
