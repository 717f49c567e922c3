package appointmentsapi

import "github.com/m04kA/SMC-GarageService/internal/domain"

// DayBookings занятые часы одного дня в ответе сервиса записей
type DayBookings struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Hours []int  `json:"hours"`
}

// CreateAppointmentRequest тело запроса на создание записи
type CreateAppointmentRequest struct {
	Date      string `json:"date"`
	Hour      int    `json:"hour"`
	AccountID *int64 `json:"accountId,omitempty"`
}

// ErrorResponse модель ошибки от сервиса записей
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (d DayBookings) toDomain() domain.Booking {
	return domain.Booking{DateKey: d.Date, BookedHours: d.Hours}
}
