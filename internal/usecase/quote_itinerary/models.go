package quote_itinerary

import (
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/pricing"
)

// LegInput один сегмент маршрута в запросе
type LegInput struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	FlightHours float64 `json:"flightHours"`
	AirportFee  float64 `json:"airportFee"`
}

// Request модель запроса расчета стоимости маршрута
type Request struct {
	Legs          []LegInput         `json:"legs"`
	HourlyRate    float64            `json:"hourlyRate"`
	OvernightRate float64            `json:"overnightRate"`
	BaseAirport   string             `json:"baseAirport"`
	AirportFees   map[string]float64 `json:"airportFees,omitempty"`
	DepartureTime time.Time          `json:"departureTime"`
	ReturnTime    time.Time          `json:"returnTime"`
}

// LegOutput один тарифицированный сегмент в ответе
type LegOutput struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	FlightHours float64 `json:"flightHours"`
	AirportFee  float64 `json:"airportFee"`
}

// Response детализация стоимости маршрута
type Response struct {
	Legs           []LegOutput `json:"legs"`
	FlightHours    float64     `json:"flightHours"`
	FlightCost     float64     `json:"flightCost"`
	AirportFees    float64     `json:"airportFees"`
	NightCount     int         `json:"nightCount"`
	OvernightFee   float64     `json:"overnightFee"`
	ReturnLegAdded bool        `json:"returnLegAdded"`
	TotalCost      float64     `json:"totalCost"`
}

func fromBreakdown(b pricing.CostBreakdown) *Response {
	legs := make([]LegOutput, 0, len(b.Legs))
	for _, l := range b.Legs {
		legs = append(legs, LegOutput{
			From:        l.From,
			To:          l.To,
			FlightHours: l.FlightHours,
			AirportFee:  l.AirportFee,
		})
	}
	return &Response{
		Legs:           legs,
		FlightHours:    b.FlightHours,
		FlightCost:     b.FlightCost,
		AirportFees:    b.AirportFees,
		NightCount:     b.NightCount,
		OvernightFee:   b.OvernightFee,
		ReturnLegAdded: b.ReturnLegAdded,
		TotalCost:      b.TotalCost,
	}
}
