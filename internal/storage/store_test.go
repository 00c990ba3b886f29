package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/flight-reservation-cli/internal/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStore(filepath.Join(dir, "flights.json"), filepath.Join(dir, "bookings.json")), dir
}

func TestLoad_MissingFiles(t *testing.T) {
	store, _ := newTestStore(t)

	flights, err := store.LoadFlights()
	require.NoError(t, err)
	assert.Empty(t, flights)

	bookings, err := store.LoadBookings()
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestLoad_CorruptFileBecomesEmptyWithoutOverwrite(t *testing.T) {
	store, dir := newTestStore(t)

	corrupt := []byte(`{"this is": "not a list"`)
	path := filepath.Join(dir, "flights.json")
	require.NoError(t, os.WriteFile(path, corrupt, 0644))

	flights, err := store.LoadFlights()
	require.NoError(t, err)
	assert.Empty(t, flights)

	// The corrupt file stays on disk until the next save.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, corrupt, data)
}

func TestSaveFlights_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	flights := []*models.Flight{
		{ID: 5, Airline: "Vistara", Source: "Delhi", Destination: "Mumbai", Date: "2026-01-19", DepartureTime: "09:00", ArrivalTime: "13:00", Seats: 20, Price: 4800},
	}
	require.NoError(t, store.SaveFlights(flights))

	loaded, err := store.LoadFlights()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, *flights[0], *loaded[0])
}

func TestSaveBookings_OverwritesWholeFile(t *testing.T) {
	store, _ := newTestStore(t)

	first := []*models.Booking{
		{BookingID: 1, PNR: "AB12CD", FlightID: 5, Airline: "Vistara", Date: "2026-01-19",
			Passengers: []models.Passenger{{Name: "Asha Rao", Age: "34", Gender: models.GenderFemale}},
			TotalSeats: 1, TotalPrice: 4800},
		{BookingID: 2, PNR: "ZZ99XX", FlightID: 1, TotalSeats: 2, TotalPrice: 110000},
	}
	require.NoError(t, store.SaveBookings(first))

	// Cancelling booking 2 saves the remaining ledger; the file must not
	// retain the removed record.
	require.NoError(t, store.SaveBookings(first[:1]))

	loaded, err := store.LoadBookings()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 1, loaded[0].BookingID)
	require.Len(t, loaded[0].Passengers, 1)
	assert.Equal(t, models.GenderFemale, loaded[0].Passengers[0].Gender)
}
