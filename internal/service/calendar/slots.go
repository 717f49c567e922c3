package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// GenerateSlots генерирует 9 часовых слотов дня (9:00..17:00) по возрастанию.
// Слот занят, если его час есть среди бронирований этого дня.
func GenerateSlots(date time.Time, schedule domain.Schedule) []domain.TimeSlot {
	booked := schedule.BookedHours(domain.DateKey(date))

	slots := make([]domain.TimeSlot, 0, domain.SlotsPerDay)
	for hour := domain.ServiceWindowStartHour; hour <= domain.ServiceWindowEndHour; hour++ {
		slots = append(slots, domain.TimeSlot{
			Hour:     hour,
			Label:    FormatTimeDisplay(hour),
			IsBooked: booked.Has(hour),
		})
	}

	return slots
}

// FormatTimeDisplay форматирует час в 12-часовом формате: 9 -> "9:00 AM", 12 -> "12:00 PM", 17 -> "5:00 PM"
func FormatTimeDisplay(hour int) string {
	switch {
	case hour == 12:
		return "12:00 PM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}

// FreeSlots количество свободных слотов
func FreeSlots(slots []domain.TimeSlot) int {
	free := 0
	for i := range slots {
		if slots[i].IsAvailable() {
			free++
		}
	}
	return free
}
