package domain

import (
	"sort"
	"time"
)

// Booking занятые часы на конкретную дату, как их отдаёт внешний источник
type Booking struct {
	DateKey     string // YYYY-MM-DD
	BookedHours []int
}

// BookingRequest запрос на запись в гараж на один часовой слот
type BookingRequest struct {
	Date      time.Time
	Hour      int
	AccountID int64 // 0 - запись без аккаунта (например, из CLI)
}

// DateKey канонический ключ дня для поиска бронирований
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// TruncateToDay обнуляет время, сохраняя часовой пояс
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// HourSet множество занятых часов одного дня
type HourSet map[int]struct{}

func (h HourSet) Has(hour int) bool {
	_, ok := h[hour]
	return ok
}

// Sorted возвращает часы по возрастанию
func (h HourSet) Sorted() []int {
	hours := make([]int, 0, len(h))
	for hour := range h {
		hours = append(hours, hour)
	}
	sort.Ints(hours)
	return hours
}

// Schedule локальная копия бронирований: ключ дня -> занятые часы.
// Часы вне рабочего окна отбрасываются при добавлении.
type Schedule map[string]HourSet

// NewSchedule собирает расписание из списка бронирований
func NewSchedule(bookings []Booking) Schedule {
	s := make(Schedule, len(bookings))
	s.Merge(bookings)
	return s
}

// Merge добавляет бронирования к расписанию
func (s Schedule) Merge(bookings []Booking) {
	for _, b := range bookings {
		for _, hour := range b.BookedHours {
			s.Add(b.DateKey, hour)
		}
	}
}

// Replace заменяет занятые часы указанных дней
func (s Schedule) Replace(keys []string, bookings []Booking) {
	for _, key := range keys {
		delete(s, key)
	}
	s.Merge(bookings)
}

// Add отмечает час занятым
func (s Schedule) Add(dateKey string, hour int) {
	if !IsServiceHour(hour) {
		return
	}
	hours, ok := s[dateKey]
	if !ok {
		hours = make(HourSet)
		s[dateKey] = hours
	}
	hours[hour] = struct{}{}
}

// BookedHours возвращает занятые часы дня (nil, если записей нет)
func (s Schedule) BookedHours(dateKey string) HourSet {
	return s[dateKey]
}

func (s Schedule) IsHourBooked(dateKey string, hour int) bool {
	return s[dateKey].Has(hour)
}

// IsFullyBooked день полностью занят, если заняты все слоты рабочего окна
func (s Schedule) IsFullyBooked(dateKey string) bool {
	return len(s[dateKey]) >= SlotsPerDay
}

// Bookings возвращает расписание в виде списка, отсортированного по дате
func (s Schedule) Bookings() []Booking {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]Booking, 0, len(keys))
	for _, key := range keys {
		result = append(result, Booking{DateKey: key, BookedHours: s[key].Sorted()})
	}
	return result
}
