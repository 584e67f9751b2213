package domain

import "time"

// Layover describes the stop between the two legs of a connecting itinerary.
type Layover struct {
	// Airport is the IATA code of the intermediate airport
	Airport string `json:"airport"`

	// DurationMinutes is the gap between first-leg arrival and
	// second-leg departure
	DurationMinutes int `json:"duration"`
}

// Itinerary is a single search result: either a direct itinerary (one
// segment) or a connecting itinerary (two segments sharing an intermediate
// airport). Itineraries are transient; they are built per search request and
// never persisted.
type Itinerary struct {
	// ID identifies the itinerary. For connections it is a composite of
	// both leg identifiers ("<first>-<second>").
	ID string `json:"id"`

	// Direct is true when the itinerary has exactly one segment
	Direct bool `json:"is_direct"`

	// Origin is the first segment's origin airport code
	Origin string `json:"origin"`

	// Destination is the last segment's destination airport code
	Destination string `json:"destination"`

	// DepartureTime is the first segment's departure
	DepartureTime time.Time `json:"departure_time"`

	// ArrivalTime is the last segment's arrival
	ArrivalTime time.Time `json:"arrival_time"`

	// TotalPrice is the sum of segment prices
	TotalPrice float64 `json:"total_price"`

	// TotalDuration is last arrival minus first departure, in minutes
	TotalDuration int `json:"total_duration"`

	// Segments holds the 1-2 flight legs in travel order
	Segments []Flight `json:"segments"`

	// Layover is set for connecting itineraries only
	Layover *Layover `json:"layover,omitempty"`
}

// NewDirectItinerary wraps a single flight leg into a direct itinerary.
func NewDirectItinerary(leg Flight) Itinerary {
	return Itinerary{
		ID:            leg.ID,
		Direct:        true,
		Origin:        leg.Origin,
		Destination:   leg.Destination,
		DepartureTime: leg.DepartureTime,
		ArrivalTime:   leg.ArrivalTime,
		TotalPrice:    leg.Price,
		TotalDuration: leg.Duration(),
		Segments:      []Flight{leg},
	}
}

// NewConnectingItinerary joins two legs into a one-stop itinerary.
// The caller guarantees first.Destination == second.Origin and that the
// second leg departs after the first arrives.
func NewConnectingItinerary(first, second Flight) Itinerary {
	return Itinerary{
		ID:            first.ID + "-" + second.ID,
		Direct:        false,
		Origin:        first.Origin,
		Destination:   second.Destination,
		DepartureTime: first.DepartureTime,
		ArrivalTime:   second.ArrivalTime,
		TotalPrice:    first.Price + second.Price,
		TotalDuration: int(second.ArrivalTime.Sub(first.DepartureTime) / time.Minute),
		Segments:      []Flight{first, second},
		Layover: &Layover{
			Airport:         first.Destination,
			DurationMinutes: int(second.DepartureTime.Sub(first.ArrivalTime) / time.Minute),
		},
	}
}

// MinSeatsAvailable returns the smallest available-seat count across all
// segments. A connection is only as bookable as its weakest leg.
func (i *Itinerary) MinSeatsAvailable() int {
	if len(i.Segments) == 0 {
		return 0
	}
	min := i.Segments[0].AvailableSeats
	for _, s := range i.Segments[1:] {
		if s.AvailableSeats < min {
			min = s.AvailableSeats
		}
	}
	return min
}
