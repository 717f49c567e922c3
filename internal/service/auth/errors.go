package auth

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrWeakPassword пароль не удовлетворяет политике паролей
	ErrWeakPassword = errors.New("password does not meet the policy")

	// ErrAccountExists аккаунт с таким email уже зарегистрирован
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidCredentials неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound сессия не найдена (не создавалась или уже завершена)
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired срок действия сессии истёк
	ErrSessionExpired = errors.New("session expired")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
