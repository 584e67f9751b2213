package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLeg(id, origin, destination string, dep, arr time.Time, price float64, seats int) Flight {
	return Flight{
		ID:             id,
		FlightNumber:   "FB-" + id,
		Origin:         origin,
		Destination:    destination,
		DepartureTime:  dep,
		ArrivalTime:    arr,
		Price:          price,
		AvailableSeats: seats,
		TotalSeats:     180,
		Status:         FlightScheduled,
	}
}

func TestNewDirectItinerary(t *testing.T) {
	dep := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	arr := dep.Add(6 * time.Hour)
	leg := testLeg("f1", "JFK", "LAX", dep, arr, 450, 12)

	it := NewDirectItinerary(leg)

	assert.Equal(t, "f1", it.ID)
	assert.True(t, it.Direct)
	assert.Equal(t, "JFK", it.Origin)
	assert.Equal(t, "LAX", it.Destination)
	assert.Equal(t, dep, it.DepartureTime)
	assert.Equal(t, arr, it.ArrivalTime)
	assert.Equal(t, float64(450), it.TotalPrice)
	assert.Equal(t, 360, it.TotalDuration)
	require.Len(t, it.Segments, 1)
	assert.Nil(t, it.Layover)
}

func TestNewConnectingItinerary(t *testing.T) {
	firstDep := time.Date(2026, 9, 15, 7, 0, 0, 0, time.UTC)
	firstArr := firstDep.Add(2 * time.Hour)
	secondDep := firstArr.Add(90 * time.Minute)
	secondArr := secondDep.Add(4 * time.Hour)

	first := testLeg("f1", "JFK", "ORD", firstDep, firstArr, 150, 10)
	second := testLeg("f2", "ORD", "LAX", secondDep, secondArr, 180, 4)

	it := NewConnectingItinerary(first, second)

	assert.Equal(t, "f1-f2", it.ID, "composite ID joins both leg identifiers")
	assert.False(t, it.Direct)
	assert.Equal(t, "JFK", it.Origin)
	assert.Equal(t, "LAX", it.Destination)
	assert.Equal(t, firstDep, it.DepartureTime)
	assert.Equal(t, secondArr, it.ArrivalTime)
	assert.Equal(t, float64(330), it.TotalPrice)

	// Total duration spans first departure to last arrival, layover included.
	assert.Equal(t, 450, it.TotalDuration)

	require.NotNil(t, it.Layover)
	assert.Equal(t, "ORD", it.Layover.Airport)
	assert.Equal(t, 90, it.Layover.DurationMinutes)

	require.Len(t, it.Segments, 2)
	assert.Equal(t, "f1", it.Segments[0].ID)
	assert.Equal(t, "f2", it.Segments[1].ID)
}

func TestItinerary_MinSeatsAvailable(t *testing.T) {
	dep := time.Date(2026, 9, 15, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		seats    []int
		expected int
	}{
		{"no segments", nil, 0},
		{"single segment", []int{7}, 7},
		{"weakest leg wins", []int{10, 2}, 2},
		{"order does not matter", []int{2, 10}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Itinerary{}
			for _, seats := range tt.seats {
				it.Segments = append(it.Segments,
					testLeg("f", "JFK", "LAX", dep, dep.Add(time.Hour), 100, seats))
			}
			assert.Equal(t, tt.expected, it.MinSeatsAvailable())
		})
	}
}
