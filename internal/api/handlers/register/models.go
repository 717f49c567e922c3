package register

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/service/auth/models"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	AccountType     string  `json:"accountType"` // user | service
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
	AgreeToTerms    bool    `json:"agreeToTerms"`
	FullName        *string `json:"fullName,omitempty"`
	ServiceName     *string `json:"serviceName,omitempty"`
	CompanyCode     *string `json:"companyCode,omitempty"`
	Location        *string `json:"location,omitempty"`
}

// AccountResponse HTTP response model
type AccountResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
}

// AuthResponse HTTP response model
type AuthResponse struct {
	Message   string          `json:"message"`
	ExpiresAt string          `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		AccountType:     r.AccountType,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		AgreeToTerms:    r.AgreeToTerms,
		FullName:        r.FullName,
		ServiceName:     r.ServiceName,
		CompanyCode:     r.CompanyCode,
		Location:        r.Location,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AuthResponse) *AuthResponse {
	return &AuthResponse{
		Message:   resp.Message,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
		Account: AccountResponse{
			ID:          resp.Account.ID,
			Email:       resp.Account.Email,
			Name:        resp.Account.Name,
			AccountType: resp.Account.AccountType,
		},
	}
}
