package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Source источник бронирований, который кэшируется
type Source interface {
	FetchBookings(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// Sink приёмник записей; после успешной записи кэш сбрасывается
type Sink interface {
	SubmitBooking(ctx context.Context, req domain.BookingRequest) error
}

// Recorder счётчики попаданий в кэш
type Recorder interface {
	CacheHit()
	CacheMiss()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopRecorder struct{}

func (nopRecorder) CacheHit()  {}
func (nopRecorder) CacheMiss() {}
