package models

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// RegisterRequest данные регистрации пользователя или автосервиса
type RegisterRequest struct {
	AccountType     string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool

	// AccountType = user
	FullName *string

	// AccountType = service
	ServiceName *string
	CompanyCode *string
	Location    *string
}

// LoginRequest данные входа
type LoginRequest struct {
	Email        string
	Password     string
	KeepSignedIn bool
}

// AccountResponse публичные данные аккаунта
type AccountResponse struct {
	ID          int64
	Email       string
	Name        string
	AccountType string
}

// AuthResponse результат регистрации или входа
type AuthResponse struct {
	Message   string
	SessionID string
	ExpiresAt time.Time
	Account   AccountResponse
}

// PasswordStrengthResponse оценка пароля
type PasswordStrengthResponse struct {
	Valid    bool
	Problems []string
	Strength int
	Label    string
}

// FromDomainAccount конвертирует доменный аккаунт
func FromDomainAccount(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID,
		Email:       account.Email,
		Name:        account.DisplayName(),
		AccountType: string(account.Type),
	}
}

// ToDomainAccount создает доменный аккаунт из запроса (без хэша пароля)
func (r *RegisterRequest) ToDomainAccount() *domain.Account {
	account := &domain.Account{
		Type:  domain.AccountType(r.AccountType),
		Email: domain.NormalizeEmail(r.Email),
	}

	if account.Type == domain.AccountTypeService {
		account.ServiceName = r.ServiceName
		account.CompanyCode = r.CompanyCode
		account.Location = r.Location
	} else {
		account.FullName = r.FullName
	}

	return account
}
