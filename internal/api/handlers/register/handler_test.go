package register

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/auth"
	"github.com/m04kA/SMC-GarageService/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAuth struct {
	err      error
	received *models.RegisterRequest
}

func (f *fakeAuth) Register(_ context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	f.received = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AuthResponse{
		Message:   "Welcome aboard! Your account has been created.",
		SessionID: "session-1",
		ExpiresAt: time.Date(2026, time.October, 19, 22, 0, 0, 0, time.UTC),
		Account:   models.AccountResponse{ID: 3, Email: "ion@example.com", Name: "Ion", AccountType: "user"},
	}, nil
}

type fakeCookies struct {
	sessionID string
}

func (c *fakeCookies) Set(_ http.ResponseWriter, _ *http.Request, sessionID string, _ time.Time) error {
	c.sessionID = sessionID
	return nil
}

const validBody = `{"accountType":"user","email":"ion@example.com","password":"Garage#2026",` +
	`"confirmPassword":"Garage#2026","agreeToTerms":true,"fullName":"Ion"}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Register(t *testing.T) {
	svc := &fakeAuth{}
	cookies := &fakeCookies{}
	h := NewHandler(svc, cookies, nopLogger{})

	rec := post(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Account.ID)
	assert.Equal(t, "2026-10-19T22:00:00Z", resp.ExpiresAt)
	assert.Equal(t, "session-1", cookies.sessionID)
	assert.NotContains(t, rec.Body.String(), "session-1")

	require.NotNil(t, svc.received)
	require.NotNil(t, svc.received.FullName)
	assert.Equal(t, "Ion", *svc.received.FullName)
	assert.True(t, svc.received.AgreeToTerms)
}

func TestHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "bad json", body: "{", wantStatus: http.StatusBadRequest, wantMessage: msgInvalidRequestBody},
		{
			name:        "weak password",
			body:        validBody,
			err:         fmt.Errorf("%w: Password must contain at least one number", auth.ErrWeakPassword),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must contain at least one number",
		},
		{name: "exists", body: validBody, err: auth.ErrAccountExists, wantStatus: http.StatusConflict, wantMessage: msgAccountExists},
		{name: "internal", body: validBody, err: auth.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cookies := &fakeCookies{}
			h := NewHandler(&fakeAuth{err: tt.err}, cookies, nopLogger{})

			rec := post(h, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, cookies.sessionID)

			if tt.wantMessage != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMessage, body.Message)
			}
		})
	}
}
