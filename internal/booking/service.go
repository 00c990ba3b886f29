// Package booking implements the reservation workflows: route search,
// ticket booking, cancellation and ledger views. A Service owns all
// process-wide state (catalog, ledger, search session, booking ID counter)
// and persists through its Store after every mutation.
package booking

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cx-tal-miterani/flight-reservation-cli/internal/catalog"
	"github.com/cx-tal-miterani/flight-reservation-cli/internal/models"
	"github.com/cx-tal-miterani/flight-reservation-cli/pkg/logger"
)

const (
	minPassengers = 1
	maxPassengers = 3

	pnrLength  = 6
	pnrCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var titleCaser = cases.Title(language.English)

// Store is the persistence boundary the service depends on.
type Store interface {
	LoadFlights() ([]*models.Flight, error)
	SaveFlights(flights []*models.Flight) error
	LoadBookings() ([]*models.Booking, error)
	SaveBookings(bookings []*models.Booking) error
}

// Service holds the working catalog, the booking ledger and the transient
// search session. It is not safe for concurrent use; the CLI drives it from
// a single goroutine.
type Service struct {
	store Store
	log   logger.Logger
	rng   *rand.Rand
	now   func() time.Time

	flights       []*models.Flight
	bookings      []*models.Booking
	lastSearch    []*models.Flight
	nextBookingID int
}

// Option configures a Service.
type Option func(*Service)

// WithRand injects the randomness source used for augmentation and PNRs.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithNow injects the clock used to determine "today".
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger injects the logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService loads both collections and prepares the working catalog:
// seed when empty, prune past-dated flights, append the per-run synthetic
// flights, then persist the result.
func NewService(store Store, opts ...Option) (*Service, error) {
	s := &Service{
		store: store,
		log:   logger.NewNop(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	flights, err := store.LoadFlights()
	if err != nil {
		return nil, err
	}
	bookings, err := store.LoadBookings()
	if err != nil {
		return nil, err
	}

	today := dateOnly(s.now())

	if len(flights) == 0 {
		flights = catalog.Seed(today)
		if err := store.SaveFlights(flights); err != nil {
			return nil, err
		}
		s.log.Info("seeded flight catalog", "flights", len(flights))
	}

	pruned := catalog.Prune(flights, today)
	if dropped := len(flights) - len(pruned); dropped > 0 {
		s.log.Info("pruned past-dated flights", "dropped", dropped)
	}

	flights = catalog.Augment(pruned, today, s.rng)
	if err := store.SaveFlights(flights); err != nil {
		return nil, err
	}

	s.flights = flights
	s.bookings = bookings
	s.nextBookingID = maxBookingID(bookings) + 1

	s.log.Info("catalog ready",
		"flights", len(s.flights),
		"bookings", len(s.bookings),
		"next_booking_id", s.nextBookingID,
	)
	return s, nil
}

// Search returns all flights serving the route in either direction, sorted
// by ascending price, and makes them the current search session. City names
// are trimmed and title-cased before matching. When nothing matches, the
// previous session is left untouched and ErrNoMatchingRoute is returned.
func (s *Service) Search(source, destination string) ([]*models.Flight, error) {
	source = NormalizeCity(source)
	destination = NormalizeCity(destination)

	var result []*models.Flight
	for _, f := range s.flights {
		if (f.Source == source && f.Destination == destination) ||
			(f.Source == destination && f.Destination == source) {
			result = append(result, f)
		}
	}

	if len(result) == 0 {
		return nil, ErrNoMatchingRoute
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Price < result[j].Price
	})

	s.lastSearch = result
	s.log.Debug("search matched", "source", source, "destination", destination, "flights", len(result))
	return result, nil
}

// SearchResults returns the current search session. Booking is only
// accepted against flights in this set.
func (s *Service) SearchResults() []*models.Flight {
	return s.lastSearch
}

// SelectFlight runs the booking gate checks without mutating anything and
// returns the chosen flight. The checks run in the same order a booking
// attempt applies them, so the CLI can fail fast before capturing
// passenger details.
func (s *Service) SelectFlight(flightID, numPassengers int) (*models.Flight, error) {
	if len(s.lastSearch) == 0 {
		return nil, ErrNoPriorSearch
	}
	if numPassengers < minPassengers || numPassengers > maxPassengers {
		return nil, ErrInvalidPassengerCount
	}

	var flight *models.Flight
	for _, f := range s.lastSearch {
		if f.ID == flightID {
			flight = f
			break
		}
	}
	if flight == nil {
		return nil, ErrInvalidFlightSelection
	}

	if numPassengers > flight.Seats {
		return nil, ErrInsufficientSeats
	}
	return flight, nil
}

// Book creates a booking for the given flight and passengers. Validation is
// all-or-nothing: any invalid passenger aborts the booking with no seat
// decrement and no ledger entry. On success the seats are decremented, both
// collections are persisted and the search session is cleared.
func (s *Service) Book(flightID int, passengers []models.Passenger) (*models.Booking, error) {
	flight, err := s.SelectFlight(flightID, len(passengers))
	if err != nil {
		return nil, err
	}

	normalized := make([]models.Passenger, 0, len(passengers))
	for _, p := range passengers {
		gender, err := ParseGender(string(p.Gender))
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, models.Passenger{
			Name:   titleCaser.String(strings.TrimSpace(p.Name)),
			Age:    strings.TrimSpace(p.Age),
			Gender: gender,
		})
	}

	flight.Seats -= len(normalized)

	b := &models.Booking{
		BookingID:  s.nextBookingID,
		PNR:        s.generatePNR(),
		FlightID:   flight.ID,
		Airline:    flight.Airline,
		Date:       flight.Date,
		Passengers: normalized,
		TotalSeats: len(normalized),
		TotalPrice: len(normalized) * flight.Price,
	}
	s.bookings = append(s.bookings, b)
	s.nextBookingID++

	if err := s.store.SaveBookings(s.bookings); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	if err := s.store.SaveFlights(s.flights); err != nil {
		return nil, fmt.Errorf("failed to persist catalog: %w", err)
	}

	s.lastSearch = nil

	s.log.Info("booking confirmed",
		"booking_id", b.BookingID,
		"pnr", b.PNR,
		"flight_id", b.FlightID,
		"passengers", b.TotalSeats,
		"total_price", b.TotalPrice,
	)
	return b, nil
}

// Bookings returns the ledger.
func (s *Service) Bookings() []*models.Booking {
	return s.bookings
}

// Flight looks up a flight in the working catalog.
func (s *Service) Flight(id int) (*models.Flight, bool) {
	for _, f := range s.flights {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// Cancel removes a booking from the ledger and returns its seats to the
// referenced flight. If the flight has since left the working catalog the
// seat restoration is a no-op and the cancellation still succeeds.
func (s *Service) Cancel(bookingID int) (*models.Booking, error) {
	idx := -1
	for i, b := range s.bookings {
		if b.BookingID == bookingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrBookingNotFound
	}

	cancelled := s.bookings[idx]
	if flight, ok := s.Flight(cancelled.FlightID); ok {
		flight.Seats += cancelled.TotalSeats
	}
	s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)

	if err := s.store.SaveBookings(s.bookings); err != nil {
		return nil, fmt.Errorf("failed to persist ledger: %w", err)
	}
	if err := s.store.SaveFlights(s.flights); err != nil {
		return nil, fmt.Errorf("failed to persist catalog: %w", err)
	}

	s.log.Info("booking cancelled",
		"booking_id", cancelled.BookingID,
		"flight_id", cancelled.FlightID,
		"seats_restored", cancelled.TotalSeats,
	)
	return cancelled, nil
}

// NormalizeCity trims and title-cases a city name as entered by the user.
func NormalizeCity(city string) string {
	return titleCaser.String(strings.TrimSpace(city))
}

// ParseGender normalizes a gender entry to its single-letter code.
// Input is case-insensitive; anything outside M, F and O is rejected.
func ParseGender(input string) (models.Gender, error) {
	switch models.Gender(strings.ToUpper(strings.TrimSpace(input))) {
	case models.GenderMale:
		return models.GenderMale, nil
	case models.GenderFemale:
		return models.GenderFemale, nil
	case models.GenderOther:
		return models.GenderOther, nil
	default:
		return "", ErrInvalidGender
	}
}

func (s *Service) generatePNR() string {
	code := make([]byte, pnrLength)
	for i := range code {
		code[i] = pnrCharset[s.rng.Intn(len(pnrCharset))]
	}
	return string(code)
}

func maxBookingID(bookings []*models.Booking) int {
	max := 0
	for _, b := range bookings {
		if b.BookingID > max {
			max = b.BookingID
		}
	}
	return max
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
