package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cx-tal-miterani/flight-reservation-cli/internal/models"
)

// Store persists the flight catalog and booking ledger as two JSON array
// files. Every save is a whole-file overwrite; the process is the sole
// reader and writer, so there is no locking.
type Store struct {
	flightsPath  string
	bookingsPath string
}

// NewStore creates a store bound to the two backing files.
func NewStore(flightsPath, bookingsPath string) *Store {
	return &Store{
		flightsPath:  flightsPath,
		bookingsPath: bookingsPath,
	}
}

// LoadFlights returns the persisted catalog. A missing or unparsable file
// yields an empty catalog with no error; the corrupt file is left in place
// until the next save overwrites it.
func (s *Store) LoadFlights() ([]*models.Flight, error) {
	data, err := readFile(s.flightsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load flights: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var flights []*models.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, nil
	}
	return flights, nil
}

// SaveFlights overwrites the catalog file.
func (s *Store) SaveFlights(flights []*models.Flight) error {
	if err := saveJSON(s.flightsPath, flights); err != nil {
		return fmt.Errorf("failed to save flights: %w", err)
	}
	return nil
}

// LoadBookings returns the persisted ledger, with the same tolerance as
// LoadFlights.
func (s *Store) LoadBookings() ([]*models.Booking, error) {
	data, err := readFile(s.bookingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var bookings []*models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, nil
	}
	return bookings, nil
}

// SaveBookings overwrites the ledger file.
func (s *Store) SaveBookings(bookings []*models.Booking) error {
	if err := saveJSON(s.bookingsPath, bookings); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	return nil
}

// readFile returns nil with no error when the file does not exist.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func saveJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
