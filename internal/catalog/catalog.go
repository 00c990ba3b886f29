// Package catalog maintains the working set of flight records: the fixed
// first-run seed, the load-time prune of past-dated flights, and the
// per-run synthetic augmentation.
package catalog

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cx-tal-miterani/flight-reservation-cli/internal/models"
)

// DateLayout is the calendar date format used in flight records.
const DateLayout = "2006-01-02"

// Airlines is the pool used for synthetic flights.
var Airlines = []string{
	"IndiGo", "Emirates", "Qatar Airways", "Air India", "Vistara",
	"Lufthansa", "United Airlines", "American Airlines",
}

// Cities is the pool of origins and destinations for synthetic flights.
var Cities = []string{
	"New Delhi", "Mumbai", "Chennai", "Bengaluru", "Hyderabad", "Kolkata",
	"Jaipur", "Lucknow", "Bhopal", "Patna", "Ranchi", "Raipur",
	"Bhubaneswar", "Thiruvananthapuram", "Panaji", "Chandigarh",
	"Shimla", "Dehradun", "Srinagar", "Guwahati", "Shillong",
	"Itanagar", "Imphal", "Kohima", "Aizawl", "Gangtok", "Agartala",
	"Port Blair",
	"Washington D.C.", "London", "Tokyo", "Beijing", "Paris", "Moscow",
	"Berlin", "Ottawa", "Canberra", "Abu Dhabi", "Riyadh", "Rome",
	"Madrid", "Buenos Aires", "Brasilia", "Cairo", "Kathmandu",
	"Islamabad", "Colombo", "Dhaka", "Kabul", "Bangkok", "Singapore",
	"Wellington", "Jakarta", "Seoul", "Hanoi", "Kuala Lumpur", "Manila",
	"Tehran", "Cape Town", "Nairobi",
}

// Seed returns the illustrative catalog used when no flights file exists,
// dated a few days out from today.
func Seed(today time.Time) []*models.Flight {
	day := func(n int) string {
		return today.AddDate(0, 0, n).Format(DateLayout)
	}

	return []*models.Flight{
		{ID: 1, Airline: "IndiGo", Source: "New Delhi", Destination: "London", Date: day(2), DepartureTime: "09:00", ArrivalTime: "13:00", Seats: 12, Price: 55000},
		{ID: 2, Airline: "Emirates", Source: "Abu Dhabi", Destination: "Sydney", Date: day(5), DepartureTime: "09:00", ArrivalTime: "13:00", Seats: 8, Price: 72000},
		{ID: 3, Airline: "Qatar Airways", Source: "Doha", Destination: "Tokyo", Date: day(3), DepartureTime: "09:00", ArrivalTime: "13:00", Seats: 15, Price: 68000},
		{ID: 4, Airline: "Air India", Source: "Delhi", Destination: "Toronto", Date: day(7), DepartureTime: "09:00", ArrivalTime: "13:00", Seats: 10, Price: 64000},
		{ID: 5, Airline: "Vistara", Source: "Delhi", Destination: "Mumbai", Date: day(4), DepartureTime: "09:00", ArrivalTime: "13:00", Seats: 20, Price: 4800},
	}
}

// Prune drops flights dated strictly before today. Flights with unparsable
// dates are dropped as well. Only the in-memory working set is filtered;
// the file catches up on the next save.
func Prune(flights []*models.Flight, today time.Time) []*models.Flight {
	cutoff := today.Format(DateLayout)

	kept := make([]*models.Flight, 0, len(flights))
	for _, f := range flights {
		if _, err := time.Parse(DateLayout, f.Date); err != nil {
			continue
		}
		if f.Date >= cutoff {
			kept = append(kept, f)
		}
	}
	return kept
}

// augmentCount is the number of synthetic flights added per run.
const augmentCount = 3

// Augment appends synthetic flights with IDs continuing from the current
// maximum. The arrival hour may wrap past midnight without advancing the
// flight date; that quirk is part of the data contract.
func Augment(flights []*models.Flight, today time.Time, rng *rand.Rand) []*models.Flight {
	maxID := 0
	for _, f := range flights {
		if f.ID > maxID {
			maxID = f.ID
		}
	}

	for i := 0; i < augmentCount; i++ {
		source := Cities[rng.Intn(len(Cities))]
		destination := source
		for destination == source {
			destination = Cities[rng.Intn(len(Cities))]
		}

		depHour := 5 + rng.Intn(16)
		arrHour := depHour + 2 + rng.Intn(9)
		if arrHour >= 24 {
			arrHour -= 24
		}

		flights = append(flights, &models.Flight{
			ID:            maxID + i + 1,
			Airline:       Airlines[rng.Intn(len(Airlines))],
			Source:        source,
			Destination:   destination,
			Date:          today.AddDate(0, 0, 1+rng.Intn(7)).Format(DateLayout),
			DepartureTime: fmt.Sprintf("%02d:%02d", depHour, rng.Intn(60)),
			ArrivalTime:   fmt.Sprintf("%02d:%02d", arrHour, rng.Intn(60)),
			Seats:         5 + rng.Intn(26),
			Price:         4000 + rng.Intn(86001),
		})
	}
	return flights
}

// Duration computes the elapsed time between two "HH:MM" wall-clock times,
// formatted as "{hours}h {minutes}m". An arrival earlier in the day than the
// departure is taken as a single midnight crossing.
func Duration(departure, arrival string) (string, error) {
	dep, err := minutesOfDay(departure)
	if err != nil {
		return "", fmt.Errorf("invalid departure time %q: %w", departure, err)
	}
	arr, err := minutesOfDay(arrival)
	if err != nil {
		return "", fmt.Errorf("invalid arrival time %q: %w", arrival, err)
	}

	if arr < dep {
		arr += 24 * 60
	}

	elapsed := arr - dep
	return fmt.Sprintf("%dh %dm", elapsed/60, elapsed%60), nil
}

func minutesOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
