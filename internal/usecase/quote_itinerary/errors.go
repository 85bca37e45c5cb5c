package quote_itinerary

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_itinerary: invalid input data")

	// ErrInvalidRange возвращается при некорректном интервале маршрута
	ErrInvalidRange = errors.New("quote_itinerary: invalid time range")

	// ErrNoLegs возвращается, когда маршрут не содержит ни одного сегмента
	ErrNoLegs = errors.New("quote_itinerary: itinerary has no legs")
)
