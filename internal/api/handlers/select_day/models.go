package select_day

// SelectDayRequest HTTP request model
type SelectDayRequest struct {
	Date string `json:"date"` // "2026-11-03"
}
