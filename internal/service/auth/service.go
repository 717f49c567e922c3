package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	accountRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/account"
	"github.com/m04kA/SMC-GarageService/internal/service/auth/models"
)

const (
	msgWelcomeUser    = "Welcome aboard! Your account has been created."
	msgWelcomeService = "Welcome! Your service account has been created."
	msgWelcomeBack    = "Welcome back! Your car misses you."
)

// Service регистрация, вход и сессии пользователей.
// Сессии живут в памяти процесса: создаются при входе и уничтожаются при выходе.
type Service struct {
	accountRepo  AccountRepository
	timeProvider TimeProvider
	logger       Logger

	sessionTTL     time.Duration
	longSessionTTL time.Duration
	bcryptCost     int

	mu       sync.Mutex
	sessions map[string]*domain.Session
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	accountRepo AccountRepository,
	sessionTTL time.Duration,
	longSessionTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		accountRepo:    accountRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		sessionTTL:     sessionTTL,
		longSessionTTL: longSessionTTL,
		bcryptCost:     bcrypt.DefaultCost,
		sessions:       make(map[string]*domain.Session),
	}
}

// Register регистрирует аккаунт и сразу открывает для него сессию
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: account_type=%s, email=%s", req.AccountType, req.Email)

	// 1. Валидация входных данных
	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	// 2. Хэшируем пароль
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	// 3. Сохраняем аккаунт
	account := req.ToDomainAccount()
	account.PasswordHash = string(hash)

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, accountRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", account.Email)
			return nil, ErrAccountExists
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	// 4. Открываем сессию
	session, err := s.openSession(created, false)
	if err != nil {
		return nil, err
	}

	message := msgWelcomeUser
	if created.IsSeller() {
		message = msgWelcomeService
	}

	s.logger.Info("Register: account id=%d created, session opened", created.ID)
	return &models.AuthResponse{
		Message:   message,
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		Account:   models.FromDomainAccount(created),
	}, nil
}

// Login проверяет email и пароль и открывает сессию
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := domain.NormalizeEmail(req.Email)
	s.logger.Info("Login: email=%s, keep_signed_in=%t", email, req.KeepSignedIn)

	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if !IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("Login: email=%s not registered", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for account id=%d", account.ID)
		return nil, ErrInvalidCredentials
	}

	session, err := s.openSession(account, req.KeepSignedIn)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: account id=%d signed in", account.ID)
	return &models.AuthResponse{
		Message:   msgWelcomeBack,
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		Account:   models.FromDomainAccount(account),
	}, nil
}

// Logout уничтожает сессию
func (s *Service) Logout(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)

	s.logger.Info("Logout: session closed")
	return nil
}

// Resolve возвращает активную сессию.
// Истёкшая сессия остаётся в памяти до PurgeExpired, который сообщает её ID
// владельцу календарей сессий.
func (s *Service) Resolve(sessionID string) (*domain.Session, error) {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired(now) {
		return nil, ErrSessionExpired
	}

	copied := *session
	return &copied, nil
}

// PurgeExpired удаляет истёкшие сессии и возвращает их ID
func (s *Service) PurgeExpired() []string {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := make([]string, 0)
	for id, session := range s.sessions {
		if session.IsExpired(now) {
			delete(s.sessions, id)
			purged = append(purged, id)
		}
	}
	return purged
}

// CheckPassword оценивает пароль без регистрации (индикатор надёжности в форме)
func (s *Service) CheckPassword(password string) *models.PasswordStrengthResponse {
	problems := ValidatePassword(password)
	strength := PasswordStrength(password)
	return &models.PasswordStrengthResponse{
		Valid:    len(problems) == 0,
		Problems: problems,
		Strength: strength,
		Label:    StrengthLabel(strength),
	}
}

func (s *Service) openSession(account *domain.Account, keepSignedIn bool) (*domain.Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		s.logger.Error("openSession: failed to generate session id: %v", err)
		return nil, fmt.Errorf("%w: failed to generate session id: %v", ErrInternal, err)
	}

	ttl := s.sessionTTL
	if keepSignedIn && s.longSessionTTL > ttl {
		ttl = s.longSessionTTL
	}

	now := s.timeProvider.Now()
	session := &domain.Session{
		ID:          id.String(),
		AccountID:   account.ID,
		Email:       account.Email,
		Name:        account.DisplayName(),
		AccountType: account.Type,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// validateRegisterRequest проверяет обязательные поля в зависимости от типа аккаунта
func validateRegisterRequest(req *models.RegisterRequest) error {
	accountType := domain.AccountType(req.AccountType)
	if !accountType.IsValid() {
		return fmt.Errorf("%w: unknown account type %q", ErrInvalidInput, req.AccountType)
	}

	if isBlank(&req.Email) || req.Password == "" || req.ConfirmPassword == "" {
		return fmt.Errorf("%w: please fill in all fields", ErrInvalidInput)
	}

	switch accountType {
	case domain.AccountTypeUser:
		if isBlank(req.FullName) {
			return fmt.Errorf("%w: please fill in all fields", ErrInvalidInput)
		}
		if len(*req.FullName) > domain.MaxNameLength {
			return fmt.Errorf("%w: full name is too long", ErrInvalidInput)
		}
	case domain.AccountTypeService:
		if isBlank(req.ServiceName) || isBlank(req.CompanyCode) || isBlank(req.Location) {
			return fmt.Errorf("%w: please fill in all fields", ErrInvalidInput)
		}
		if len(*req.ServiceName) > domain.MaxNameLength ||
			len(*req.CompanyCode) > domain.MaxCompanyCodeLength ||
			len(*req.Location) > domain.MaxLocationLength {
			return fmt.Errorf("%w: field is too long", ErrInvalidInput)
		}
	}

	if !IsValidEmail(domain.NormalizeEmail(req.Email)) {
		return fmt.Errorf("%w: please enter a valid email address", ErrInvalidInput)
	}

	if problems := ValidatePassword(req.Password); len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrWeakPassword, strings.Join(problems, "; "))
	}

	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}

	if !req.AgreeToTerms {
		return fmt.Errorf("%w: please agree to the terms and conditions", ErrInvalidInput)
	}

	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
