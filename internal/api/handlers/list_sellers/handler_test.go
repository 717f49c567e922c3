package list_sellers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/service/directory"
	"github.com/m04kA/SMC-GarageService/internal/service/directory/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeDirectory struct {
	gotCity string
	resp    *models.SellersResponse
	err     error
}

func (f *fakeDirectory) ListSellers(_ context.Context, city string) (*models.SellersResponse, error) {
	f.gotCity = city
	return f.resp, f.err
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_ListSellers(t *testing.T) {
	city := "Cluj"
	svc := &fakeDirectory{resp: &models.SellersResponse{
		City:    &city,
		Sellers: []models.SellerResponse{{AccountID: 3, ServiceName: "Auto Cluj", City: "Cluj"}},
		Cities:  []string{"Brasov", "Cluj"},
	}}

	rec := get(NewHandler(svc, nopLogger{}), "/api/v1/sellers?city=Cluj")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cluj", svc.gotCity)

	var resp models.SellersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sellers, 1)
	assert.Equal(t, "Auto Cluj", resp.Sellers[0].ServiceName)
	assert.Equal(t, []string{"Brasov", "Cluj"}, resp.Cities)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid city", fmt.Errorf("%w: city is too long", directory.ErrInvalidInput), http.StatusBadRequest},
		{"repository failure", fmt.Errorf("%w: boom", directory.ErrInternal), http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(NewHandler(&fakeDirectory{err: tt.err}, nopLogger{}), "/api/v1/sellers")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
