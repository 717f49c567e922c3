package auth

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var strengthLabels = []string{"Very Weak", "Weak", "Fair", "Good", "Strong"}

// ValidatePassword проверяет пароль и возвращает список нарушений политики (пусто - пароль подходит).
// Длина считается в символах, верхний предел в байтах.
func ValidatePassword(password string) []string {
	problems := make([]string, 0)

	if utf8.RuneCountInString(password) < domain.MinPasswordLength {
		problems = append(problems, "Password must be at least 8 characters long")
	}
	if len(password) > domain.MaxPasswordBytes {
		problems = append(problems, fmt.Sprintf("Password must be at most %d bytes long", domain.MaxPasswordBytes))
	}
	if !upperRe.MatchString(password) {
		problems = append(problems, "Password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		problems = append(problems, "Password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		problems = append(problems, "Password must contain at least one number")
	}
	if !specialRe.MatchString(password) {
		problems = append(problems, "Password must contain at least one special character (!@#$%^&* etc.)")
	}

	return problems
}

// PasswordStrength оценка надёжности пароля от 0 до 4
func PasswordStrength(password string) int {
	strength := 0
	length := utf8.RuneCountInString(password)

	if length >= domain.MinPasswordLength {
		strength++
	}
	if length >= domain.StrongPasswordLength {
		strength++
	}
	if upperRe.MatchString(password) && lowerRe.MatchString(password) {
		strength++
	}
	if digitRe.MatchString(password) {
		strength++
	}
	if specialRe.MatchString(password) {
		strength++
	}

	return min(strength, domain.MaxPasswordStrength)
}

// StrengthLabel текстовое описание оценки; вне диапазона - "Very Weak"
func StrengthLabel(strength int) string {
	if strength < 0 || strength >= len(strengthLabels) {
		return strengthLabels[0]
	}
	return strengthLabels[strength]
}

// IsValidEmail простая проверка формата email
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
