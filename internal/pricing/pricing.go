package pricing

import (
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/scheduling"
)

// Leg is one segment of an itinerary.
type Leg struct {
	From        string
	To          string
	FlightHours float64
	AirportFee  float64
}

// Params carries the rates and tables needed to price an itinerary.
// Fee tables and rates are supplied by the caller; this package does no I/O.
type Params struct {
	HourlyRate    float64
	OvernightRate float64

	// BaseAirport is where the aircraft must end its itinerary. A mandatory
	// return leg is appended when the last leg lands elsewhere.
	BaseAirport string

	// AirportFees maps airport code to its landing fee, used for the
	// appended return leg.
	AirportFees map[string]float64

	// DepartureTime and ReturnTime bound the whole itinerary; overnight
	// detection runs once across it, not per leg.
	DepartureTime time.Time
	ReturnTime    time.Time
}

// CostBreakdown itemizes the price of an itinerary.
type CostBreakdown struct {
	Legs           []Leg
	FlightHours    float64
	FlightCost     float64
	AirportFees    float64
	NightCount     int
	OvernightFee   float64
	ReturnLegAdded bool
	TotalCost      float64
}

// PriceItinerary считает стоимость одно- или многосегментного маршрута:
// лётные часы по ставке, аэропортовые сборы по сегментам и плата за ночёвки
// один раз на весь маршрут. Если маршрут не заканчивается на базовом
// аэродроме, обязательный обратный сегмент добавляется автоматически и
// тарифицируется по той же формуле. Функция чистая.
func PriceItinerary(legs []Leg, params Params) CostBreakdown {
	priced := make([]Leg, len(legs))
	copy(priced, legs)

	breakdown := CostBreakdown{}

	if n := len(priced); n > 0 && params.BaseAirport != "" && priced[n-1].To != params.BaseAirport {
		priced = append(priced, returnLeg(priced, params))
		breakdown.ReturnLegAdded = true
	}

	for _, leg := range priced {
		breakdown.FlightHours += leg.FlightHours
		breakdown.AirportFees += leg.AirportFee
	}
	breakdown.FlightCost = breakdown.FlightHours * params.HourlyRate

	if !params.DepartureTime.IsZero() && !params.ReturnTime.IsZero() {
		overnight := scheduling.DetectOvernight(params.DepartureTime, params.ReturnTime)
		if overnight.IsOvernight {
			breakdown.NightCount = overnight.NightCount
			breakdown.OvernightFee = float64(overnight.NightCount) * params.OvernightRate
		}
	}

	breakdown.Legs = priced
	breakdown.TotalCost = breakdown.FlightCost + breakdown.AirportFees + breakdown.OvernightFee
	return breakdown
}

// returnLeg строит обязательный обратный сегмент до базы. Лётные часы
// берутся из зеркального сегмента маршрута, если он есть, иначе из
// последнего сегмента (маршруты клуба симметричны по времени полёта).
// Аэропортовый сбор — из таблицы сборов для базового аэродрома.
func returnLeg(legs []Leg, params Params) Leg {
	last := legs[len(legs)-1]

	hours := last.FlightHours
	for _, leg := range legs {
		if leg.From == params.BaseAirport && leg.To == last.To {
			hours = leg.FlightHours
			break
		}
	}

	return Leg{
		From:        last.To,
		To:          params.BaseAirport,
		FlightHours: hours,
		AirportFee:  params.AirportFees[params.BaseAirport],
	}
}
