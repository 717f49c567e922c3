package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/directory/models"
)

// Service каталог услуг гаража и справочник автосервисов
type Service struct {
	sellerRepo SellerRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(sellerRepo SellerRepository, logger Logger) *Service {
	return &Service{
		sellerRepo: sellerRepo,
		logger:     logger,
	}
}

// ListServices возвращает каталог услуг
func (s *Service) ListServices() []models.ServiceResponse {
	result := make([]models.ServiceResponse, 0, len(catalog))
	for _, item := range catalog {
		result = append(result, models.FromDomainService(item))
	}
	return result
}

// GetService возвращает услугу по ID
func (s *Service) GetService(id int64) (*models.ServiceResponse, error) {
	for _, item := range catalog {
		if item.ID == id {
			resp := models.FromDomainService(item)
			return &resp, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
}

// ListSellers возвращает автосервисы. Пустой city - без фильтра,
// иначе сравнение города без учёта регистра.
func (s *Service) ListSellers(ctx context.Context, city string) (*models.SellersResponse, error) {
	city = strings.TrimSpace(city)
	if len(city) > domain.MaxLocationLength {
		return nil, fmt.Errorf("%w: city is too long", ErrInvalidInput)
	}

	var filter *string
	if city != "" {
		filter = &city
	}

	s.logger.Info("ListSellers: city=%q", city)

	sellers, err := s.sellerRepo.ListSellers(ctx, filter)
	if err != nil {
		s.logger.Error("ListSellers: failed to list sellers: %v", err)
		return nil, fmt.Errorf("%w: failed to list sellers: %v", ErrInternal, err)
	}

	cities, err := s.ListCities(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.SellersResponse{
		City:    filter,
		Sellers: make([]models.SellerResponse, 0, len(sellers)),
		Cities:  cities,
	}
	for _, seller := range sellers {
		resp.Sellers = append(resp.Sellers, models.FromDomainSeller(seller))
	}

	return resp, nil
}

// ListCities возвращает города, в которых есть автосервисы
func (s *Service) ListCities(ctx context.Context) ([]string, error) {
	cities, err := s.sellerRepo.ListCities(ctx)
	if err != nil {
		s.logger.Error("ListCities: failed to list cities: %v", err)
		return nil, fmt.Errorf("%w: failed to list cities: %v", ErrInternal, err)
	}
	return cities, nil
}
