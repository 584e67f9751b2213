package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlight_Validate(t *testing.T) {
	validFlight := func() *Flight {
		dep := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
		return &Flight{
			ID:             "f1",
			FlightNumber:   "AA-100",
			AirlineID:      "airline-1",
			Origin:         "JFK",
			Destination:    "LAX",
			DepartureTime:  dep,
			ArrivalTime:    dep.Add(6 * time.Hour),
			Price:          450,
			AvailableSeats: 50,
			TotalSeats:     180,
			Status:         FlightScheduled,
		}
	}

	tests := []struct {
		name        string
		modify      func(*Flight)
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid flight passes",
			modify:  func(f *Flight) {},
			wantErr: false,
		},
		{
			name:        "empty flight number fails",
			modify:      func(f *Flight) { f.FlightNumber = "" },
			wantErr:     true,
			errContains: "flight_number",
		},
		{
			name:        "invalid origin fails",
			modify:      func(f *Flight) { f.Origin = "NEWYORK" },
			wantErr:     true,
			errContains: "IATA code",
		},
		{
			name:        "same origin and destination fails",
			modify:      func(f *Flight) { f.Destination = f.Origin },
			wantErr:     true,
			errContains: "must be different",
		},
		{
			name:        "arrival before departure fails",
			modify:      func(f *Flight) { f.ArrivalTime = f.DepartureTime.Add(-time.Hour) },
			wantErr:     true,
			errContains: "arrival_time",
		},
		{
			name:        "arrival equal to departure fails",
			modify:      func(f *Flight) { f.ArrivalTime = f.DepartureTime },
			wantErr:     true,
			errContains: "arrival_time",
		},
		{
			name:        "zero price fails",
			modify:      func(f *Flight) { f.Price = 0 },
			wantErr:     true,
			errContains: "price",
		},
		{
			name:        "negative available seats fails",
			modify:      func(f *Flight) { f.AvailableSeats = -1 },
			wantErr:     true,
			errContains: "available_seats",
		},
		{
			name:        "available above total fails",
			modify:      func(f *Flight) { f.AvailableSeats = f.TotalSeats + 1 },
			wantErr:     true,
			errContains: "total_seats",
		},
		{
			name:    "zero available seats passes",
			modify:  func(f *Flight) { f.AvailableSeats = 0 },
			wantErr: false,
		},
		{
			name:        "unknown status fails",
			modify:      func(f *Flight) { f.Status = "parked" },
			wantErr:     true,
			errContains: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFlight()
			tt.modify(f)

			err := f.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidEntity))
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestFlight_Normalize(t *testing.T) {
	f := Flight{FlightNumber: " aa-100 ", Origin: "jfk", Destination: " lax"}
	f.Normalize()

	assert.Equal(t, "AA-100", f.FlightNumber)
	assert.Equal(t, "JFK", f.Origin)
	assert.Equal(t, "LAX", f.Destination)
}

func TestFlight_Duration(t *testing.T) {
	dep := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	f := Flight{DepartureTime: dep, ArrivalTime: dep.Add(2*time.Hour + 30*time.Minute)}

	assert.Equal(t, 150, f.Duration())
}

func TestFlightStatus_IsValid(t *testing.T) {
	for _, s := range []FlightStatus{FlightScheduled, FlightDelayed, FlightBoarding, FlightDeparted, FlightArrived, FlightCancelled} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, FlightStatus("parked").IsValid())
	assert.False(t, FlightStatus("").IsValid())
}
