package priority

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник отсутствует в очереди
	ErrMemberNotFound = errors.New("priority.repository: member not in queue")

	// ErrPositionNotFound возвращается, когда позиция не занята
	ErrPositionNotFound = errors.New("priority.repository: position not held")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("priority.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("priority.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("priority.repository: failed to scan row")
)
