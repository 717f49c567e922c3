package appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrSlotTaken возвращается, когда час на эту дату уже занят
	ErrSlotTaken = fmt.Errorf("appointment.repository: %w", domain.ErrSlotTaken)

	// ErrInvalidRequest возвращается при попытке записать час вне рабочего окна
	ErrInvalidRequest = errors.New("appointment.repository: invalid booking request")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
