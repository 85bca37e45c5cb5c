package missions

import "errors"

var (
	// ErrMissionNotFound возвращается, когда миссия не найдена
	ErrMissionNotFound = errors.New("mission not found")

	// ErrAccessDenied возвращается, когда у участника нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда миссия не может быть отменена
	ErrCannotCancel = errors.New("mission cannot be cancelled")

	// ErrInvalidStatus возвращается при некорректном статусе в фильтре
	ErrInvalidStatus = errors.New("invalid mission status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
