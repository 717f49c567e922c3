package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusConflict, "слот занят")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "слот занят"}, body)
}

func TestRespondBadRequest_DefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec, "")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgBadRequest, body.Message)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Hour int `json:"hour"`
	}

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"hour":10}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, 10, p.Hour)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"hour":10,"minute":5}`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		assert.EqualError(t, DecodeJSON(r, &p), "empty request body")
	})
}
