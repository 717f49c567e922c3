package login

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/service/auth/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	KeepSignedIn bool   `json:"keepSignedIn"`
}

// AccountResponse HTTP response model
type AccountResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Message   string          `json:"message"`
	ExpiresAt string          `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}

func (r *LoginRequest) ToServiceRequest() *models.LoginRequest {
	return &models.LoginRequest{
		Email:        r.Email,
		Password:     r.Password,
		KeepSignedIn: r.KeepSignedIn,
	}
}

func FromServiceResponse(resp *models.AuthResponse) *LoginResponse {
	return &LoginResponse{
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
