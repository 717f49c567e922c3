package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с аккаунтами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аккаунтов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый аккаунт. Email должен быть уже нормализован.
func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query, args, err := psqlbuilder.Insert("accounts").
		Columns(
			"account_type",
			"email",
			"password_hash",
			"full_name",
			"service_name",
			"company_code",
			"location",
		).
		Values(
			account.Type,
			account.Email,
			account.PasswordHash,
			account.FullName,
			account.ServiceName,
			account.CompanyCode,
			account.Location,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	account.CreatedAt = createdAt.Time

	return account, nil
}

// GetByEmail получает аккаунт по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"account_type",
		"email",
		"password_hash",
		"full_name",
		"service_name",
		"company_code",
		"location",
		"created_at",
	).
		From("accounts").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var account domain.Account
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.Type,
		&account.Email,
		&account.PasswordHash,
		&account.FullName,
		&account.ServiceName,
		&account.CompanyCode,
		&account.Location,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan account: %v", ErrScanRow, err)
	}

	account.CreatedAt = createdAt.Time

	return &account, nil
}

// ListSellers получает автосервисы, опционально только из указанного города (без учёта регистра)
func (r *Repository) ListSellers(ctx context.Context, city *string) ([]*domain.Seller, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"service_name",
		"company_code",
		"location",
		"email",
	).
		From("accounts").
		Where(squirrel.Eq{"account_type": domain.AccountTypeService}).
		OrderBy("service_name ASC", "id ASC")

	if city != nil {
		selectBuilder = selectBuilder.Where("LOWER(location) = LOWER(?)", *city)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSellers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSellers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sellers := make([]*domain.Seller, 0)

	for rows.Next() {
		var seller domain.Seller
		var serviceName, companyCode, location sql.NullString

		if err := rows.Scan(&seller.AccountID, &serviceName, &companyCode, &location, &seller.Email); err != nil {
			return nil, fmt.Errorf("%w: ListSellers - scan row: %v", ErrScanRow, err)
		}

		seller.ServiceName = serviceName.String
		seller.CompanyCode = companyCode.String
		seller.City = location.String

		sellers = append(sellers, &seller)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSellers - rows error: %v", ErrScanRow, err)
	}

	return sellers, nil
}

// ListCities получает список городов, в которых есть автосервисы
func (r *Repository) ListCities(ctx context.Context) ([]string, error) {
	query, args, err := psqlbuilder.Select("DISTINCT location").
		From("accounts").
		Where(squirrel.Eq{"account_type": domain.AccountTypeService}).
		Where(squirrel.NotEq{"location": nil}).
		OrderBy("location ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("%w: ListCities - scan row: %v", ErrScanRow, err)
		}
		cities = append(cities, city)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCities - rows error: %v", ErrScanRow, err)
	}

	return cities, nil
}
