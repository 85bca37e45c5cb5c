package create_prereservation

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник не найден
	ErrMemberNotFound = errors.New("create_prereservation: member not found")

	// ErrMemberInactive возвращается, когда членство участника приостановлено
	ErrMemberInactive = errors.New("create_prereservation: member is inactive")

	// ErrMemberNotInQueue возвращается, когда участник отсутствует в очереди приоритетов
	ErrMemberNotInQueue = errors.New("create_prereservation: member not in priority queue")

	// ErrSlotNotAvailable возвращается, когда запрошенный интервал конфликтует
	// с существующей миссией или блокировкой
	ErrSlotNotAvailable = errors.New("create_prereservation: slot is not available")

	// ErrInvalidRange возвращается при некорректном интервале миссии
	ErrInvalidRange = errors.New("create_prereservation: invalid time range")

	// ErrDepartureInPast возвращается, когда время вылета уже прошло
	ErrDepartureInPast = errors.New("create_prereservation: departure time is in the past")

	// ErrMissionTooLong возвращается, когда миссия превышает допустимую длительность
	ErrMissionTooLong = errors.New("create_prereservation: mission duration exceeds the limit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_prereservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_prereservation: internal error")
)
