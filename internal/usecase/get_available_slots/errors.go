package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidRange возвращается при некорректном запрошенном диапазоне
	ErrInvalidRange = errors.New("get_available_slots: invalid time range")

	// ErrRangeTooWide возвращается, когда диапазон превышает допустимый предел
	ErrRangeTooWide = errors.New("get_available_slots: requested range is too wide")

	// ErrInvalidGranularity возвращается при недопустимом шаге сетки слотов
	ErrInvalidGranularity = errors.New("get_available_slots: invalid slot granularity")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
