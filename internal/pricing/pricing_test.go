package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceItineraryTwoLegsWithOvernight(t *testing.T) {
	// Два сегмента 2ч и 1.5ч по ставке 2800, сборы 1000 и 600, одна ночёвка
	// по 1500: (3.5×2800) + 1600 + 1500 = 12900
	legs := []Leg{
		{From: "UUWW", To: "ULLI", FlightHours: 2, AirportFee: 1000},
		{From: "ULLI", To: "UUWW", FlightHours: 1.5, AirportFee: 600},
	}

	breakdown := PriceItinerary(legs, Params{
		HourlyRate:    2800,
		OvernightRate: 1500,
		BaseAirport:   "UUWW",
		DepartureTime: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		ReturnTime:    time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC),
	})

	assert.False(t, breakdown.ReturnLegAdded)
	assert.InDelta(t, 3.5, breakdown.FlightHours, 1e-9)
	assert.InDelta(t, 9800, breakdown.FlightCost, 1e-9)
	assert.InDelta(t, 1600, breakdown.AirportFees, 1e-9)
	assert.Equal(t, 1, breakdown.NightCount)
	assert.InDelta(t, 1500, breakdown.OvernightFee, 1e-9)
	assert.InDelta(t, 12900, breakdown.TotalCost, 1e-9)
}

func TestPriceItineraryNoOvernight(t *testing.T) {
	legs := []Leg{
		{From: "UUWW", To: "UUWW", FlightHours: 1, AirportFee: 500},
	}

	breakdown := PriceItinerary(legs, Params{
		HourlyRate:    2800,
		OvernightRate: 1500,
		BaseAirport:   "UUWW",
		DepartureTime: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		ReturnTime:    time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, 0, breakdown.NightCount)
	assert.InDelta(t, 2800+500, breakdown.TotalCost, 1e-9)
}

func TestPriceItineraryAppendsReturnLeg(t *testing.T) {
	legs := []Leg{
		{From: "UUWW", To: "ULLI", FlightHours: 2, AirportFee: 1000},
	}

	breakdown := PriceItinerary(legs, Params{
		HourlyRate:    2000,
		BaseAirport:   "UUWW",
		AirportFees:   map[string]float64{"UUWW": 800},
	})

	require.True(t, breakdown.ReturnLegAdded)
	require.Len(t, breakdown.Legs, 2)

	ret := breakdown.Legs[1]
	assert.Equal(t, "ULLI", ret.From)
	assert.Equal(t, "UUWW", ret.To)
	// Часы зеркального сегмента UUWW→ULLI
	assert.InDelta(t, 2, ret.FlightHours, 1e-9)
	assert.InDelta(t, 800, ret.AirportFee, 1e-9)

	assert.InDelta(t, 4*2000+1000+800, breakdown.TotalCost, 1e-9)
}

func TestPriceItineraryMultiNight(t *testing.T) {
	legs := []Leg{
		{From: "UUWW", To: "URSS", FlightHours: 4, AirportFee: 1200},
		{From: "URSS", To: "UUWW", FlightHours: 4, AirportFee: 700},
	}

	breakdown := PriceItinerary(legs, Params{
		HourlyRate:    3000,
		OvernightRate: 1500,
		BaseAirport:   "UUWW",
		DepartureTime: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		ReturnTime:    time.Date(2025, 6, 12, 17, 0, 0, 0, time.UTC),
	})

	// Плата за ночёвки применяется один раз на маршрут, не по сегментам
	assert.Equal(t, 2, breakdown.NightCount)
	assert.InDelta(t, 3000, breakdown.OvernightFee, 1e-9)
}
