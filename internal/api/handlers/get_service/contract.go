package get_service

import "github.com/m04kA/SMC-GarageService/internal/service/directory/models"

type DirectoryService interface {
	GetService(id int64) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
