package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/flight-reservation-cli/internal/booking"
	"github.com/cx-tal-miterani/flight-reservation-cli/internal/booking/mocks"
	"github.com/cx-tal-miterani/flight-reservation-cli/internal/models"
)

func runScript(svc ReservationService, lines ...string) string {
	var out bytes.Buffer
	c := New(svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	c.Run()
	return out.String()
}

func sampleFlight() *models.Flight {
	return &models.Flight{
		ID: 1, Airline: "Qatar Airways", Source: "Doha", Destination: "Sydney",
		Date: "2026-01-20", DepartureTime: "09:00", ArrivalTime: "13:00",
		Seats: 10, Price: 68000,
	}
}

func TestRun_Exit(t *testing.T) {
	svc := new(mocks.MockReservationService)

	out := runScript(svc, "5")

	assert.Contains(t, out, "FLIGHT TICKET BOOKING SYSTEM")
	assert.Contains(t, out, "Thank you for using our system")
}

func TestRun_InvalidChoice(t *testing.T) {
	svc := new(mocks.MockReservationService)

	out := runScript(svc, "9", "5")

	assert.Contains(t, out, "ERROR: Invalid choice!")
}

func TestSearchFlights(t *testing.T) {
	svc := new(mocks.MockReservationService)
	svc.On("Search", "doha", "sydney").Return([]*models.Flight{sampleFlight()}, nil)

	out := runScript(svc, "1", "doha", "sydney", "5")

	assert.Contains(t, out, "Available flights between Doha and Sydney (both ways):")
	assert.Contains(t, out, "ID: 1 | Qatar Airways | 2026-01-20 09:00 → 13:00 | Seats: 10 | Price: ₹68000 | Duration: 4h 0m")
	svc.AssertExpectations(t)
}

func TestSearchFlights_NoRoute(t *testing.T) {
	svc := new(mocks.MockReservationService)
	svc.On("Search", "Atlantis", "Doha").Return(nil, booking.ErrNoMatchingRoute)

	out := runScript(svc, "1", "Atlantis", "Doha", "5")

	assert.Contains(t, out, "No flights available for this route!")
	svc.AssertExpectations(t)
}

func TestBookTicket_RequiresSearch(t *testing.T) {
	svc := new(mocks.MockReservationService)
	svc.On("SearchResults").Return(nil)

	out := runScript(svc, "2", "5")

	assert.Contains(t, out, "Please search flights first before booking!")
	svc.AssertNotCalled(t, "Book", mock.Anything, mock.Anything)
}

func TestBookTicket_Success(t *testing.T) {
	flight := sampleFlight()
	svc := new(mocks.MockReservationService)
	svc.On("SearchResults").Return([]*models.Flight{flight})
	svc.On("SelectFlight", 1, 1).Return(flight, nil)
	svc.On("Book", 1, []models.Passenger{{Name: "asha rao", Age: "34", Gender: models.GenderFemale}}).
		Return(&models.Booking{BookingID: 3, PNR: "AB12CD"}, nil)

	out := runScript(svc, "2", "1", "1", "asha rao", "34", "f", "5")

	assert.Contains(t, out, "Passenger 1:")
	assert.Contains(t, out, "Booking Confirmed! Booking ID: 3 | PNR: AB12CD")
	svc.AssertExpectations(t)
}

func TestBookTicket_NonNumericInput(t *testing.T) {
	svc := new(mocks.MockReservationService)
	svc.On("SearchResults").Return([]*models.Flight{sampleFlight()})

	out := runScript(svc, "2", "first one", "5")

	assert.Contains(t, out, "Invalid input!")
	svc.AssertNotCalled(t, "SelectFlight", mock.Anything, mock.Anything)
}

func TestBookTicket_GateErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "too many passengers", err: booking.ErrInvalidPassengerCount, expected: "Only 1 to 3 passengers allowed!"},
		{name: "flight not in results", err: booking.ErrInvalidFlightSelection, expected: "Invalid Flight ID! Select from last search results."},
		{name: "not enough seats", err: booking.ErrInsufficientSeats, expected: "Not enough seats available!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockReservationService)
			svc.On("SearchResults").Return([]*models.Flight{sampleFlight()})
			svc.On("SelectFlight", 7, 2).Return(nil, tt.err)

			out := runScript(svc, "2", "7", "2", "5")

			assert.Contains(t, out, tt.expected)
			svc.AssertNotCalled(t, "Book", mock.Anything, mock.Anything)
		})
	}
}

func TestBookTicket_InvalidGenderAbortsCapture(t *testing.T) {
	flight := sampleFlight()
	svc := new(mocks.MockReservationService)
	svc.On("SearchResults").Return([]*models.Flight{flight})
	svc.On("SelectFlight", 1, 2).Return(flight, nil)

	// Second passenger enters an invalid gender; the whole booking aborts.
	out := runScript(svc, "2", "1", "2", "asha rao", "34", "F", "vikram rao", "36", "x", "5")

	assert.Contains(t, out, "Invalid gender! Use M, F, or O")
	svc.AssertNotCalled(t, "Book", mock.Anything, mock.Anything)
}

func TestViewBookings(t *testing.T) {
	svc := new(mocks.MockReservationService)
	svc.On("Bookings").Return([]*models.Booking{{
		BookingID: 3, PNR: "AB12CD", FlightID: 1, Airline: "Qatar Airways", Date: "2026-01-20",
		Passengers: []models.Passenger{
			{Name: "Asha Rao", Age: "34", Gender: models.GenderFemale},
			{Name: "Kiran Rao", Age: "8", Gender: "Z"},
		},
		TotalSeats: 2, TotalPrice: 136000,
	}})
	svc.On("Flight", 1).Return(sampleFlight(), true)

	out := runScript(svc, "3", "5")

	assert.Contains(t, out, "Your Bookings:")
	assert.Contains(t, out, "Booking ID: 3 | PNR: AB12CD | Qatar Airways | 2026-01-20 | Seats: 2 | Total: ₹136000")
	assert.Contains(t, out, "Departure: 2026-01-20 09:00 → Arrival: 13:00 | Duration: 4h 0m")
	assert.Contains(t, out, " - Asha Rao (34 yrs, Female)")
	assert.Contains(t, out, " - Kiran Rao (8 yrs, Unknown)")
	svc.AssertExpectations(t)
}

func TestViewBookings_FlightGone(t *testing.T) {
	svc := new(mocks.MockReservationService)
	svc.On("Bookings").Return([]*models.Booking{{
		BookingID: 4, PNR: "ZZ99XX", FlightID: 404, Airline: "Emirates", Date: "2026-01-21",
		Passengers: []models.Passenger{{Name: "Asha Rao", Age: "34", Gender: models.GenderFemale}},
		TotalSeats: 1, TotalPrice: 61000,
	}})
	svc.On("Flight", 404).Return(nil, false)

	out := runScript(svc, "3", "5")

	assert.Contains(t, out, "Booking ID: 4")
	assert.NotContains(t, out, "Departure:", "no schedule line when the flight left the working set")
}

func TestViewBookings_Empty(t *testing.T) {
	svc := new(mocks.MockReservationService)
	svc.On("Bookings").Return(nil)

	out := runScript(svc, "3", "5")

	assert.Contains(t, out, "No bookings yet!")
}

func TestCancelBooking(t *testing.T) {
	svc := new(mocks.MockReservationService)
	svc.On("Cancel", 3).Return(&models.Booking{BookingID: 3}, nil)

	out := runScript(svc, "4", "3", "5")

	assert.Contains(t, out, "Booking Cancelled!")
	svc.AssertExpectations(t)
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc := new(mocks.MockReservationService)
	svc.On("Cancel", 99).Return(nil, booking.ErrBookingNotFound)

	out := runScript(svc, "4", "99", "5")

	assert.Contains(t, out, "Booking ID not found!")
	svc.AssertExpectations(t)
}

func TestCancelBooking_NonNumericInput(t *testing.T) {
	svc := new(mocks.MockReservationService)

	out := runScript(svc, "4", "three", "5")

	assert.Contains(t, out, "Invalid input!")
	svc.AssertNotCalled(t, "Cancel", mock.Anything)
}

var _ ReservationService = (*mocks.MockReservationService)(nil)

func TestNew(t *testing.T) {
	svc := new(mocks.MockReservationService)
	c := New(svc, strings.NewReader(""), &bytes.Buffer{})
	require.NotNil(t, c)
}
