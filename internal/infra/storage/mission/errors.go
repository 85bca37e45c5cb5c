package mission

import "errors"

var (
	// ErrMissionNotFound возвращается, когда миссия не найдена
	ErrMissionNotFound = errors.New("mission.repository: mission not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("mission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("mission.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("mission.repository: failed to scan row")

	// ErrCannotCancel возвращается, когда миссия не может быть отменена
	ErrCannotCancel = errors.New("mission.repository: mission cannot be cancelled")
)
