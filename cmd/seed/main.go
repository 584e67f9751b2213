// Package main seeds the database with airports, airlines, and randomly
// generated flights for local development and demos.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/flight-booking/flight-booking-backend/internal/adapter/store/postgres"
	"github.com/flight-booking/flight-booking-backend/internal/config"
	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/infrastructure/logger"
)

// seedAirport is a static airport row.
type seedAirport struct {
	code, name, city, country, timezone string
}

// seedAirline is a static airline row.
type seedAirline struct {
	name, code, country string
}

var airports = []seedAirport{
	{"JFK", "John F. Kennedy International Airport", "New York", "United States", "America/New_York"},
	{"LAX", "Los Angeles International Airport", "Los Angeles", "United States", "America/Los_Angeles"},
	{"ORD", "O'Hare International Airport", "Chicago", "United States", "America/Chicago"},
	{"DFW", "Dallas/Fort Worth International Airport", "Dallas", "United States", "America/Chicago"},
	{"DEN", "Denver International Airport", "Denver", "United States", "America/Denver"},
	{"SFO", "San Francisco International Airport", "San Francisco", "United States", "America/Los_Angeles"},
	{"SEA", "Seattle-Tacoma International Airport", "Seattle", "United States", "America/Los_Angeles"},
	{"LAS", "Harry Reid International Airport", "Las Vegas", "United States", "America/Los_Angeles"},
	{"MIA", "Miami International Airport", "Miami", "United States", "America/New_York"},
	{"ATL", "Hartsfield-Jackson Atlanta International Airport", "Atlanta", "United States", "America/New_York"},
	{"LHR", "London Heathrow Airport", "London", "United Kingdom", "Europe/London"},
	{"CDG", "Charles de Gaulle Airport", "Paris", "France", "Europe/Paris"},
	{"FRA", "Frankfurt Airport", "Frankfurt", "Germany", "Europe/Berlin"},
	{"AMS", "Amsterdam Airport Schiphol", "Amsterdam", "Netherlands", "Europe/Amsterdam"},
	{"DXB", "Dubai International Airport", "Dubai", "UAE", "Asia/Dubai"},
	{"SIN", "Singapore Changi Airport", "Singapore", "Singapore", "Asia/Singapore"},
	{"HKG", "Hong Kong International Airport", "Hong Kong", "Hong Kong", "Asia/Hong_Kong"},
	{"NRT", "Narita International Airport", "Tokyo", "Japan", "Asia/Tokyo"},
	{"ICN", "Incheon International Airport", "Seoul", "South Korea", "Asia/Seoul"},
	{"SYD", "Sydney Airport", "Sydney", "Australia", "Australia/Sydney"},
	{"MEL", "Melbourne Airport", "Melbourne", "Australia", "Australia/Melbourne"},
	{"YYZ", "Toronto Pearson International Airport", "Toronto", "Canada", "America/Toronto"},
	{"YVR", "Vancouver International Airport", "Vancouver", "Canada", "America/Vancouver"},
	{"GRU", "São Paulo/Guarulhos International Airport", "São Paulo", "Brazil", "America/Sao_Paulo"},
	{"MEX", "Mexico City International Airport", "Mexico City", "Mexico", "America/Mexico_City"},
}

var airlines = []seedAirline{
	{"American Airlines", "AA", "United States"},
	{"Delta Air Lines", "DL", "United States"},
	{"United Airlines", "UA", "United States"},
	{"Southwest Airlines", "WN", "United States"},
	{"British Airways", "BA", "United Kingdom"},
	{"Lufthansa", "LH", "Germany"},
	{"Air France", "AF", "France"},
	{"Emirates", "EK", "UAE"},
	{"Singapore Airlines", "SQ", "Singapore"},
	{"Cathay Pacific", "CX", "Hong Kong"},
	{"Qantas", "QF", "Australia"},
	{"Air Canada", "AC", "Canada"},
}

var aircraftTypes = []string{
	"Boeing 737", "Boeing 777", "Boeing 787", "Airbus A320",
	"Airbus A350", "Airbus A380", "Boeing 747", "Airbus A330",
}

// statusWeights skews generated flights toward scheduled, matching real
// schedules where operational statuses are the minority.
var statusWeights = []struct {
	status domain.FlightStatus
	weight int
}{
	{domain.FlightScheduled, 70},
	{domain.FlightDelayed, 10},
	{domain.FlightBoarding, 5},
	{domain.FlightDeparted, 5},
	{domain.FlightArrived, 5},
	{domain.FlightCancelled, 5},
}

func main() {
	numFlights := flag.Int("flights", 10000, "number of flights to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg := config.MustLoad()
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-booking-seed",
	})

	if cfg.Database.URL == "" {
		log.Fatal().Msg("DATABASE_URL is required for seeding")
	}

	ctx := context.Background()
	store, err := postgres.Open(ctx, cfg.Database, log.WithComponent("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer store.Close()

	rng := rand.New(rand.NewSource(*seed))

	log.Info().Int("airports", len(airports)).Msg("Seeding airports")
	for _, a := range airports {
		airport := &domain.Airport{
			Code:     a.code,
			Name:     a.name,
			City:     a.city,
			Country:  a.country,
			Timezone: a.timezone,
		}
		if err := store.CreateAirport(ctx, airport); err != nil {
			log.Warn().Err(err).Str("code", a.code).Msg("Skipping airport")
		}
	}

	log.Info().Int("airlines", len(airlines)).Msg("Seeding airlines")
	airlineIDs := make([]string, 0, len(airlines))
	airlineCodes := make([]string, 0, len(airlines))
	for _, a := range airlines {
		airline := &domain.Airline{
			Name:    a.name,
			Code:    a.code,
			Country: a.country,
		}
		if err := store.CreateAirline(ctx, airline); err != nil {
			log.Warn().Err(err).Str("code", a.code).Msg("Skipping airline")
			continue
		}
		airlineIDs = append(airlineIDs, airline.ID)
		airlineCodes = append(airlineCodes, airline.Code)
	}
	if len(airlineIDs) == 0 {
		log.Fatal().Msg("No airlines inserted; aborting flight generation")
	}

	log.Info().Int("flights", *numFlights).Msg("Generating flights")
	created := 0
	for i := 0; i < *numFlights; i++ {
		if err := store.CreateFlight(ctx, randomFlight(rng, airlineIDs, airlineCodes)); err != nil {
			continue
		}
		created++
	}

	log.Info().Int("created", created).Msg("Seeding complete")
}

// randomFlight generates one plausible flight: random route, departure inside
// the next 90 days, duration 1-16h, price scaled with duration.
func randomFlight(rng *rand.Rand, airlineIDs, airlineCodes []string) *domain.Flight {
	origin := airports[rng.Intn(len(airports))]
	destination := airports[rng.Intn(len(airports))]
	for destination.code == origin.code {
		destination = airports[rng.Intn(len(airports))]
	}

	airlineIdx := rng.Intn(len(airlineIDs))

	departure := time.Now().UTC().
		AddDate(0, 0, rng.Intn(90)).
		Add(time.Duration(rng.Intn(24)) * time.Hour).
		Add(time.Duration(rng.Intn(4)*15) * time.Minute).
		Truncate(time.Minute)
	durationHours := 1 + rng.Intn(16)
	arrival := departure.
		Add(time.Duration(durationHours) * time.Hour).
		Add(time.Duration(rng.Intn(60)) * time.Minute)

	basePrice := 100 + durationHours*50 + rng.Intn(200) - 50
	totalSeats := []int{150, 180, 200, 250, 300, 350}[rng.Intn(6)]

	return &domain.Flight{
		FlightNumber:   fmt.Sprintf("%s%d", airlineCodes[airlineIdx], 100+rng.Intn(9900)),
		AirlineID:      airlineIDs[airlineIdx],
		Origin:         origin.code,
		Destination:    destination.code,
		DepartureTime:  departure,
		ArrivalTime:    arrival,
		Price:          float64(basePrice),
		AvailableSeats: rng.Intn(totalSeats + 1),
		TotalSeats:     totalSeats,
		AircraftType:   aircraftTypes[rng.Intn(len(aircraftTypes))],
		Status:         weightedStatus(rng),
	}
}

func weightedStatus(rng *rand.Rand) domain.FlightStatus {
	total := 0
	for _, w := range statusWeights {
		total += w.weight
	}
	n := rng.Intn(total)
	for _, w := range statusWeights {
		if n < w.weight {
			return w.status
		}
		n -= w.weight
	}
	return domain.FlightScheduled
}
