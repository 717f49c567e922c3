package appointmentsapi

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrSlotTaken возвращается, когда сервис записей отвечает 409
	ErrSlotTaken = fmt.Errorf("appointments client: %w", domain.ErrSlotTaken)

	// ErrRejected возвращается, когда сервис записей отклонил запрос как некорректный
	ErrRejected = errors.New("appointments client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointments client: invalid response")
)
