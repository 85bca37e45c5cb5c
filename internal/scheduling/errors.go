package scheduling

import "errors"

var (
	// ErrInvalidInterval возвращается при некорректном интервале (start >= end)
	// Это всегда ошибка вызывающей стороны, не повторяемая операция
	ErrInvalidInterval = errors.New("scheduling: invalid interval, start must be before end")

	// ErrInvalidGranularity возвращается при некорректном шаге разбиения
	ErrInvalidGranularity = errors.New("scheduling: invalid slot granularity")
)
