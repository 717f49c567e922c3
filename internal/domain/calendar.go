package domain

import "time"

// CalendarDay ячейка сетки календаря.
// Ячейки соседних месяцев инертны: флаги занятости и выбора у них всегда false.
type CalendarDay struct {
	Date           time.Time // полночь дня
	Day            int       // 1..31
	IsCurrentMonth bool
	IsPast         bool
	IsFullyBooked  bool
	IsSelected     bool
}

// IsSelectable день можно выбрать для записи
func (d *CalendarDay) IsSelectable() bool {
	return d.IsCurrentMonth && !d.IsPast
}

// Selection текущий выбор пользователя: день и (опционально) час
type Selection struct {
	Date *time.Time
	Hour *int
}

// IsComplete выбраны и день, и час
func (s Selection) IsComplete() bool {
	return s.Date != nil && s.Hour != nil
}

// IsEmpty ничего не выбрано
func (s Selection) IsEmpty() bool {
	return s.Date == nil && s.Hour == nil
}

// Equal сравнивает два выбора по значению
func (s Selection) Equal(other Selection) bool {
	if (s.Date == nil) != (other.Date == nil) || (s.Hour == nil) != (other.Hour == nil) {
		return false
	}
	if s.Date != nil && !s.Date.Equal(*other.Date) {
		return false
	}
	if s.Hour != nil && *s.Hour != *other.Hour {
		return false
	}
	return true
}
