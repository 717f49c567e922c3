package list_sellers

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/service/directory/models"
)

type DirectoryService interface {
	ListSellers(ctx context.Context, city string) (*models.SellersResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
