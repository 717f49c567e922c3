package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-GarageService/internal/config"
	bookingsCache "github.com/m04kA/SMC-GarageService/internal/infra/cache/bookings"
	appointmentRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-GarageService/internal/integrations/appointmentsapi"
	"github.com/m04kA/SMC-GarageService/internal/service/calendar"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

// bookingBackend источник и приёмник бронирований календаря
type bookingBackend interface {
	calendar.BookingSource
	calendar.BookingSink
}

// openDB подключается к PostgreSQL и настраивает пул соединений
func openDB(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)
	return db, nil
}

// newBookingBackend выбирает хранилище бронирований по bookings.backend
// и, если включён Redis, оборачивает его кэшем.
// db нужен только для backend = postgres. Возвращаемая функция закрывает клиента Redis.
func newBookingBackend(
	ctx context.Context,
	cfg *config.Config,
	db *sql.DB,
	recorder bookingsCache.Recorder,
	log *logger.Logger,
) (bookingBackend, func(), error) {
	var backend bookingBackend

	switch cfg.Bookings.Backend {
	case config.BackendAPI:
		backend = appointmentsapi.NewClient(
			cfg.AppointmentsAPI.URL,
			time.Duration(cfg.AppointmentsAPI.Timeout)*time.Second,
			log,
		)
		log.Info("Bookings backend: appointments API %s (timeout=%ds)", cfg.AppointmentsAPI.URL, cfg.AppointmentsAPI.Timeout)
	default:
		if db == nil {
			return nil, nil, fmt.Errorf("bookings backend %q requires a database connection", cfg.Bookings.Backend)
		}
		backend = appointmentRepo.NewRepository(db)
		log.Info("Bookings backend: PostgreSQL")
	}

	if !cfg.Redis.Enabled {
		return backend, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Без Redis сервис работает, просто без кэша
		log.Warn("Redis %s unavailable, bookings cache disabled: %v", cfg.Redis.Addr, err)
		rdb.Close()
		return backend, func() {}, nil
	}

	log.Info("Bookings cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
	cached := bookingsCache.NewStore(rdb, backend, backend, cfg.Redis.TTL(), recorder, log)

	return cached, func() { rdb.Close() }, nil
}
