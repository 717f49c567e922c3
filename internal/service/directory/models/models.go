package models

import (
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Price       string `json:"price"` // "$49.99"
}

// SellerResponse автосервис
type SellerResponse struct {
	AccountID   int64  `json:"accountId"`
	ServiceName string `json:"serviceName"`
	CompanyCode string `json:"companyCode"`
	City        string `json:"city"`
	Email       string `json:"email"`
}

// SellersResponse список автосервисов и доступные для фильтра города
type SellersResponse struct {
	City    *string          `json:"city,omitempty"`
	Sellers []SellerResponse `json:"sellers"`
	Cities  []string         `json:"cities"`
}

// FromDomainService конвертирует услугу каталога
func FromDomainService(s domain.CarService) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		PriceCents:  s.PriceCents,
		Price:       FormatPrice(s.PriceCents),
	}
}

// FromDomainSeller конвертирует автосервис
func FromDomainSeller(s *domain.Seller) SellerResponse {
	return SellerResponse{
		AccountID:   s.AccountID,
		ServiceName: s.ServiceName,
		CompanyCode: s.CompanyCode,
		City:        s.City,
		Email:       s.Email,
	}
}

// FormatPrice 4999 -> "$49.99"
func FormatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
