package directory

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// SellerRepository интерфейс репозитория автосервисов
type SellerRepository interface {
	ListSellers(ctx context.Context, city *string) ([]*domain.Seller, error)
	ListCities(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
