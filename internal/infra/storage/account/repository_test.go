package account

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func strPtr(s string) *string { return &s }

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO accounts \(account_type,email,password_hash,full_name,service_name,company_code,location\) VALUES`).
		WithArgs("user", "ion@example.com", "hash", "Ion Popescu", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	account, err := repo.Create(context.Background(), &domain.Account{
		Type:         domain.AccountTypeUser,
		Email:        "ion@example.com",
		PasswordHash: "hash",
		FullName:     strPtr("Ion Popescu"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, createdAt, account.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_EmailTaken(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO accounts`).
		WillReturnError(&pq.Error{Code: pgUniqueViolation})

	_, err := repo.Create(context.Background(), &domain.Account{
		Type:  domain.AccountTypeUser,
		Email: "ion@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO accounts`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Account{Email: "ion@example.com"})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, account_type, email, password_hash, full_name, service_name, company_code, location, created_at FROM accounts WHERE email = \$1`).
		WithArgs("shop@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "account_type", "email", "password_hash", "full_name",
			"service_name", "company_code", "location", "created_at",
		}).AddRow(int64(3), "service", "shop@example.com", "hash", nil, "Auto Expert", "RO123", "Cluj", createdAt))

	account, err := repo.GetByEmail(context.Background(), "shop@example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(3), account.ID)
	assert.Equal(t, domain.AccountTypeService, account.Type)
	assert.Nil(t, account.FullName)
	require.NotNil(t, account.ServiceName)
	assert.Equal(t, "Auto Expert", *account.ServiceName)
	require.NotNil(t, account.Location)
	assert.Equal(t, "Cluj", *account.Location)
	assert.Equal(t, createdAt, account.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM accounts WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRepository_ListSellers(t *testing.T) {
	columns := []string{"id", "service_name", "company_code", "location", "email"}

	t.Run("all cities", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, service_name, company_code, location, email FROM accounts WHERE account_type = \$1 ORDER BY service_name ASC, id ASC`).
			WithArgs("service").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "Auto Expert", "RO1", "Cluj", "a@example.com").
				AddRow(int64(2), "Best Garage", nil, nil, "b@example.com"))

		sellers, err := repo.ListSellers(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, sellers, 2)

		assert.Equal(t, "Auto Expert", sellers[0].ServiceName)
		assert.Equal(t, "Cluj", sellers[0].City)
		assert.Equal(t, "", sellers[1].City)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filter by city", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`WHERE account_type = \$1 AND LOWER\(location\) = LOWER\(\$2\)`).
			WithArgs("service", "cluj").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "Auto Expert", "RO1", "Cluj", "a@example.com"))

		sellers, err := repo.ListSellers(context.Background(), strPtr("cluj"))
		require.NoError(t, err)
		require.Len(t, sellers, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`FROM accounts`).WillReturnError(errors.New("timeout"))

		_, err := repo.ListSellers(context.Background(), nil)
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestRepository_ListCities(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT DISTINCT location FROM accounts WHERE account_type = \$1 AND location IS NOT NULL ORDER BY location ASC`).
		WithArgs("service").
		WillReturnRows(sqlmock.NewRows([]string{"location"}).AddRow("Bucuresti").AddRow("Cluj"))

	cities, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bucuresti", "Cluj"}, cities)
	assert.NoError(t, mock.ExpectationsWereMet())
}
