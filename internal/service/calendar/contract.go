package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// BookingSource источник занятых слотов (PostgreSQL, внешний API, кэш)
type BookingSource interface {
	// FetchBookings возвращает бронирования на даты в диапазоне [from, to] включительно
	FetchBookings(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// BookingSink приёмник новых записей
type BookingSink interface {
	SubmitBooking(ctx context.Context, req domain.BookingRequest) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в часовом поясе гаража
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
