package domain

// Рабочее окно гаража: слоты по одному часу с 9:00 до 17:00 включительно
const (
	ServiceWindowStartHour = 9
	ServiceWindowEndHour   = 17
	SlotsPerDay            = ServiceWindowEndHour - ServiceWindowStartHour + 1
)

// Сетка календаря: 6 недель по 7 дней, неделя начинается с воскресенья
const (
	GridWeeks = 6
	GridCells = GridWeeks * 7
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"
)

// Business validation constants
const (
	MinPasswordLength    = 8
	StrongPasswordLength = 12
	MaxPasswordStrength  = 4
	MaxPasswordBytes     = 72 // предел bcrypt
	MaxNameLength        = 200
	MaxLocationLength    = 100
	MaxCompanyCodeLength = 20
)

// IsServiceHour проверяет, что час попадает в рабочее окно
func IsServiceHour(hour int) bool {
	return hour >= ServiceWindowStartHour && hour <= ServiceWindowEndHour
}
