package list_sellers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/directory"
)

const msgInvalidCity = "некорректное название города"

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sellers?city=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	result, err := h.service.ListSellers(r.Context(), city)
	if err != nil {
		if errors.Is(err, directory.ErrInvalidInput) {
			h.logger.Warn("GET /sellers - Invalid city: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCity)
			return
		}
		h.logger.Error("GET /sellers - Failed to list sellers: city=%q, error=%v", city, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sellers - Sellers listed: city=%q, count=%d", city, len(result.Sellers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
