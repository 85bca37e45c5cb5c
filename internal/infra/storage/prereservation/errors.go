package prereservation

import "errors"

var (
	// ErrPreReservationNotFound возвращается, когда пре-резервирование не найдено
	ErrPreReservationNotFound = errors.New("prereservation.repository: pre-reservation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("prereservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("prereservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("prereservation.repository: failed to scan row")

	// ErrStaleStatus возвращается, когда переход статуса не прошёл из-за
	// конкурентного изменения (строка уже не в ожидаемом статусе)
	ErrStaleStatus = errors.New("prereservation.repository: status changed concurrently")
)
