package quote_itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Legs: []LegInput{
			{From: "UUEE", To: "ULLI", FlightHours: 3.5, AirportFee: 1600},
		},
		HourlyRate:    2800,
		OvernightRate: 4500,
		BaseAirport:   "UUEE",
		AirportFees:   map[string]float64{"UUEE": 1500},
		DepartureTime: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		ReturnTime:    time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC),
	}
}

func TestExecute_RoundTripWithReturnLeg(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 7 часов по 2800 + сборы 1600 + 1500, без ночёвок
	assert.True(t, resp.ReturnLegAdded)
	assert.Equal(t, float64(7), resp.FlightHours)
	assert.Equal(t, float64(19600), resp.FlightCost)
	assert.Equal(t, float64(3100), resp.AirportFees)
	assert.Equal(t, 0, resp.NightCount)
	assert.Equal(t, float64(22700), resp.TotalCost)
}

func TestExecute_OvernightCharged(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	req := validRequest()
	req.ReturnTime = time.Date(2025, 6, 11, 2, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.NightCount)
	assert.Equal(t, float64(4500), resp.OvernightFee)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	req := validRequest()
	req.Legs = nil
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoLegs)

	req = validRequest()
	req.BaseAirport = ""
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.ReturnTime = req.DepartureTime
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRange)

	req = validRequest()
	req.Legs[0].FlightHours = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
