package calendar

import "errors"

var (
	// ErrIncompleteSelection подтверждение без выбранного дня или часа
	ErrIncompleteSelection = errors.New("calendar: date and hour must both be selected")

	// ErrSubmissionFailed приёмник отклонил запись; выбор пользователя сохраняется
	ErrSubmissionFailed = errors.New("calendar: booking submission failed")

	// ErrLoadFailed не удалось получить бронирования из источника
	ErrLoadFailed = errors.New("calendar: failed to load bookings")

	// ErrInvalidMonth месяц вне диапазона 1..12
	ErrInvalidMonth = errors.New("calendar: invalid month")
)
