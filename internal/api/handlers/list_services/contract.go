package list_services

import "github.com/m04kA/SMC-GarageService/internal/service/directory/models"

type DirectoryService interface {
	ListServices() []models.ServiceResponse
}
