package confirm_prereservation

import "errors"

var (
	// ErrPreReservationNotFound возвращается, когда пре-резервирование не найдено
	ErrPreReservationNotFound = errors.New("confirm_prereservation: pre-reservation not found")

	// ErrAccessDenied возвращается, когда участник подтверждает чужое пре-резервирование
	ErrAccessDenied = errors.New("confirm_prereservation: access denied")

	// ErrNotWaiting возвращается, когда пре-резервирование уже в терминальном статусе
	ErrNotWaiting = errors.New("confirm_prereservation: pre-reservation is not waiting")

	// ErrHoldExpired возвращается, когда 12-часовое удержание истекло
	ErrHoldExpired = errors.New("confirm_prereservation: hold period has expired")

	// ErrSlotTaken возвращается, когда окно успело занять другое бронирование
	// или блокировка; пре-резервирование при этом переводится в expired
	ErrSlotTaken = errors.New("confirm_prereservation: slot is no longer available")

	// ErrSupersededByPriority возвращается, когда на то же окно ожидает
	// участник с более высокой позицией в очереди; проигравшее
	// пре-резервирование при этом переводится в expired
	ErrSupersededByPriority = errors.New("confirm_prereservation: yielded to a higher-priority request")

	// ErrInsufficientBalance возвращается, когда списание стоимости миссии не прошло
	ErrInsufficientBalance = errors.New("confirm_prereservation: insufficient balance")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_prereservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_prereservation: internal error")
)
