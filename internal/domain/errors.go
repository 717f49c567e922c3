package domain

import "errors"

// ErrSlotTaken часовой слот уже занят другим бронированием.
// Источники и приёмники бронирований оборачивают эту ошибку, чтобы календарь
// и handlers могли распознать конфликт независимо от хранилища.
var ErrSlotTaken = errors.New("slot already booked")
