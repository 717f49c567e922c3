package password_strength

import "github.com/m04kA/SMC-GarageService/internal/service/auth/models"

type PasswordChecker interface {
	CheckPassword(password string) *models.PasswordStrengthResponse
}
