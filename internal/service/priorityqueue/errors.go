package priorityqueue

import "errors"

var (
	// ErrUnknownMember возвращается, когда участник отсутствует в очереди
	ErrUnknownMember = errors.New("priorityqueue: unknown member")

	// ErrPositionNotHeld возвращается, когда позиция никем не занята
	ErrPositionNotHeld = errors.New("priorityqueue: position not held")

	// ErrInvalidPosition возвращается при некорректной целевой позиции
	ErrInvalidPosition = errors.New("priorityqueue: invalid position")

	// ErrQueueCorrupted возвращается, когда позиции не образуют перестановку
	// 1..N. Это фатальная внутренняя ошибка: очередь повреждена, тихое
	// восстановление запрещено
	ErrQueueCorrupted = errors.New("priorityqueue: queue invariant violated")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("priorityqueue: internal error")
)
