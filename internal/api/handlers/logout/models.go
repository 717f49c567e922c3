package logout

// LogoutResponse HTTP response model
type LogoutResponse struct {
	Message string `json:"message"`
}
