package domain

// TimeSlot часовой слот выбранного дня
type TimeSlot struct {
	Hour     int    // 9..17
	Label    string // "9:00 AM" .. "5:00 PM"
	IsBooked bool
}

// IsAvailable слот можно выбрать
func (s *TimeSlot) IsAvailable() bool {
	return !s.IsBooked
}
