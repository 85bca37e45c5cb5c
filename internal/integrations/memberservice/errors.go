package memberservice

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник клуба не найден
	ErrMemberNotFound = errors.New("memberservice client: member not found")

	// ErrInsufficientBalance возвращается, когда на счёте участника
	// недостаточно средств для списания
	ErrInsufficientBalance = errors.New("memberservice client: insufficient balance")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("memberservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("memberservice client: invalid response")
)
