package calendar

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// GenerateGrid строит сетку месяца из 42 ячеек (6 недель, неделя с воскресенья).
//
// Сначала идут последние дни предыдущего месяца (столько, каков номер дня недели
// первого числа), затем все дни месяца, затем первые дни следующего месяца.
// Ячейки соседних месяцев инертны. "Сегодня" и часовой пояс берутся из today,
// поэтому часы читаются вызывающим ровно один раз на генерацию.
func GenerateGrid(
	year int,
	month time.Month,
	schedule domain.Schedule,
	selected *time.Time,
	today time.Time,
) []domain.CalendarDay {
	loc := today.Location()
	today = domain.TruncateToDay(today)

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	leading := int(first.Weekday())
	total := DaysInMonth(year, month)

	days := make([]domain.CalendarDay, 0, domain.GridCells)

	// Хвост предыдущего месяца
	for i := leading; i > 0; i-- {
		date := first.AddDate(0, 0, -i)
		days = append(days, domain.CalendarDay{Date: date, Day: date.Day()})
	}

	// Дни текущего месяца
	for day := 1; day <= total; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		days = append(days, domain.CalendarDay{
			Date:           date,
			Day:            day,
			IsCurrentMonth: true,
			IsPast:         date.Before(today),
			IsFullyBooked:  schedule.IsFullyBooked(domain.DateKey(date)),
			IsSelected:     selected != nil && isSameDay(*selected, date),
		})
	}

	// Начало следующего месяца до 42 ячеек
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	for i := 0; len(days) < domain.GridCells; i++ {
		date := next.AddDate(0, 0, i)
		days = append(days, domain.CalendarDay{Date: date, Day: date.Day()})
	}

	return days
}

// DaysInMonth количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange первый и последний день месяца (полночь) в часовом поясе loc
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, loc)
	return first, last
}

// NextMonth следующий месяц; декабрь переходит в январь следующего года
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PreviousMonth предыдущий месяц; январь переходит в декабрь прошлого года
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// ValidMonth проверяет, что месяц в диапазоне 1..12
func ValidMonth(month time.Month) bool {
	return month >= time.January && month <= time.December
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
