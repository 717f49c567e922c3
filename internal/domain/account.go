package domain

import (
	"strings"
	"time"
)

// AccountType тип аккаунта
type AccountType string

const (
	AccountTypeUser    AccountType = "user"    // владелец автомобиля
	AccountTypeService AccountType = "service" // автосервис (продавец услуг)
)

// IsValid проверяет, что тип аккаунта известен
func (t AccountType) IsValid() bool {
	return t == AccountTypeUser || t == AccountTypeService
}

// Account зарегистрированный пользователь или автосервис
type Account struct {
	ID           int64
	Type         AccountType
	Email        string
	PasswordHash string

	// Для AccountTypeUser
	FullName *string

	// Для AccountTypeService
	ServiceName *string
	CompanyCode *string // CUI - регистрационный код компании
	Location    *string // город

	CreatedAt time.Time
}

// DisplayName имя для приветствия: ФИО пользователя или название сервиса
func (a *Account) DisplayName() string {
	switch {
	case a.Type == AccountTypeService && a.ServiceName != nil:
		return *a.ServiceName
	case a.FullName != nil:
		return *a.FullName
	default:
		return a.Email
	}
}

// IsSeller аккаунт автосервиса
func (a *Account) IsSeller() bool {
	return a.Type == AccountTypeService
}

// NormalizeEmail приводит email к каноническому виду для хранения и поиска
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Session явная сессия пользователя: создаётся при входе, уничтожается при выходе
type Session struct {
	ID          string
	AccountID   int64
	Email       string
	Name        string
	AccountType AccountType
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// IsExpired сессия истекла к моменту now
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
