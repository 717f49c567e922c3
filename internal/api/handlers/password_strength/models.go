package password_strength

import "github.com/m04kA/SMC-GarageService/internal/service/auth/models"

// CheckRequest HTTP request model
type CheckRequest struct {
	Password string `json:"password"`
}

// CheckResponse HTTP response model
type CheckResponse struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems"`
	Strength int      `json:"strength"` // 0..4
	Label    string   `json:"label"`
}

func FromServiceResponse(resp *models.PasswordStrengthResponse) *CheckResponse {
	return &CheckResponse{
		Valid:    resp.Valid,
		Problems: resp.Problems,
		Strength: resp.Strength,
		Label:    resp.Label,
	}
}
