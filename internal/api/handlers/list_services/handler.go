package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
)

type Handler struct {
	service DirectoryService
}

func NewHandler(service DirectoryService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.ListServices())
}
