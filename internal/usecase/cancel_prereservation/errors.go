package cancel_prereservation

import "errors"

var (
	// ErrPreReservationNotFound возвращается, когда пре-резервирование не найдено
	ErrPreReservationNotFound = errors.New("cancel_prereservation: pre-reservation not found")

	// ErrAccessDenied возвращается, когда участник отменяет чужое пре-резервирование
	ErrAccessDenied = errors.New("cancel_prereservation: access denied")

	// ErrNotWaiting возвращается, когда пре-резервирование уже в терминальном статусе
	ErrNotWaiting = errors.New("cancel_prereservation: pre-reservation is not waiting")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_prereservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_prereservation: internal error")
)
