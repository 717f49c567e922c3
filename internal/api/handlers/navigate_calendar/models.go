package navigate_calendar

const (
	DirectionNext     = "next"
	DirectionPrevious = "previous"
)

// NavigateRequest HTTP request model
type NavigateRequest struct {
	Direction string `json:"direction"` // next | previous
}
