package directory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

type fakeSellerRepo struct {
	sellers    []*domain.Seller
	err        error
	lastFilter *string
}

func (r *fakeSellerRepo) ListSellers(_ context.Context, city *string) ([]*domain.Seller, error) {
	r.lastFilter = city
	if r.err != nil {
		return nil, r.err
	}
	if city == nil {
		return r.sellers, nil
	}

	result := make([]*domain.Seller, 0)
	for _, s := range r.sellers {
		if strings.EqualFold(s.City, *city) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSellerRepo) ListCities(_ context.Context) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	seen := make(map[string]bool)
	cities := make([]string, 0)
	for _, s := range r.sellers {
		if !seen[s.City] {
			seen[s.City] = true
			cities = append(cities, s.City)
		}
	}
	return cities, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: []*domain.Seller{
		{AccountID: 1, ServiceName: "Auto Expert", City: "Cluj"},
		{AccountID: 2, ServiceName: "Best Garage", City: "Bucuresti"},
		{AccountID: 3, ServiceName: "Car Doctor", City: "Cluj"},
	}}
}

func TestService_ListServices(t *testing.T) {
	s := NewService(newTestRepo(), nopLogger{})

	services := s.ListServices()
	require.Len(t, services, 9)

	assert.Equal(t, "Oil Change", services[0].Title)
	assert.Equal(t, int64(4999), services[0].PriceCents)
	assert.Equal(t, "$49.99", services[0].Price)
	assert.Equal(t, "General Inspection", services[8].Title)
	assert.Equal(t, "$59.99", services[8].Price)
}

func TestService_GetService(t *testing.T) {
	s := NewService(newTestRepo(), nopLogger{})

	svc, err := s.GetService(7)
	require.NoError(t, err)
	assert.Equal(t, "Transmission Service", svc.Title)
	assert.Equal(t, "$149.99", svc.Price)

	_, err = s.GetService(42)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_ListSellers(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		repo := newTestRepo()
		s := NewService(repo, nopLogger{})

		resp, err := s.ListSellers(context.Background(), "  ")
		require.NoError(t, err)

		assert.Nil(t, repo.lastFilter)
		assert.Nil(t, resp.City)
		assert.Len(t, resp.Sellers, 3)
		assert.Equal(t, []string{"Cluj", "Bucuresti"}, resp.Cities)
	})

	t.Run("case insensitive city", func(t *testing.T) {
		repo := newTestRepo()
		s := NewService(repo, nopLogger{})

		resp, err := s.ListSellers(context.Background(), "cLUJ")
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter)
		assert.Equal(t, "cLUJ", *repo.lastFilter)
		require.Len(t, resp.Sellers, 2)
		assert.Equal(t, "Auto Expert", resp.Sellers[0].ServiceName)
		assert.Equal(t, "Car Doctor", resp.Sellers[1].ServiceName)
	})

	t.Run("city too long", func(t *testing.T) {
		s := NewService(newTestRepo(), nopLogger{})

		_, err := s.ListSellers(context.Background(), strings.Repeat("x", domain.MaxLocationLength+1))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := newTestRepo()
		repo.err = errors.New("db down")
		s := NewService(repo, nopLogger{})

		_, err := s.ListSellers(context.Background(), "")
		assert.ErrorIs(t, err, ErrInternal)
	})
}
