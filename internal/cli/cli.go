// Package cli implements the interactive menu loop. It owns no reservation
// state of its own: every workflow reads and mutates through the service
// interface, and every workflow error is reported and swallowed so the menu
// keeps running.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cx-tal-miterani/flight-reservation-cli/internal/booking"
	"github.com/cx-tal-miterani/flight-reservation-cli/internal/catalog"
	"github.com/cx-tal-miterani/flight-reservation-cli/internal/models"
)

// ReservationService is the surface the CLI drives.
type ReservationService interface {
	Search(source, destination string) ([]*models.Flight, error)
	SearchResults() []*models.Flight
	SelectFlight(flightID, numPassengers int) (*models.Flight, error)
	Book(flightID int, passengers []models.Passenger) (*models.Booking, error)
	Bookings() []*models.Booking
	Flight(id int) (*models.Flight, bool)
	Cancel(bookingID int) (*models.Booking, error)
}

// CLI reads menu choices and workflow input from in and renders to out.
type CLI struct {
	svc ReservationService
	in  *bufio.Scanner
	out io.Writer
}

// New creates a CLI bound to the given streams.
func New(svc ReservationService, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run drives the menu loop until the user exits or input ends.
func (c *CLI) Run() {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, bold("FLIGHT TICKET BOOKING SYSTEM ✈️"))
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "1. Search Flights")
		fmt.Fprintln(c.out, "2. Book Ticket")
		fmt.Fprintln(c.out, "3. View Bookings")
		fmt.Fprintln(c.out, "4. Cancel Booking")
		fmt.Fprintln(c.out, "5. Exit")

		choice, ok := c.readLine("Enter choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			c.searchFlights()
		case "2":
			c.bookTicket()
		case "3":
			c.viewBookings()
		case "4":
			c.cancelBooking()
		case "5":
			fmt.Fprintf(c.out, "\n %s!\n\n", bold("Thank you for using our system"))
			return
		default:
			fmt.Fprintln(c.out, "\nERROR: Invalid choice!")
		}
	}
}

func (c *CLI) searchFlights() {
	source, ok := c.readLine("Enter source city: ")
	if !ok {
		return
	}
	destination, ok := c.readLine("Enter destination city: ")
	if !ok {
		return
	}

	result, err := c.svc.Search(source, destination)
	if err != nil {
		c.reportError(err)
		return
	}

	fmt.Fprintf(c.out, "\n%s\n\n", bold(fmt.Sprintf(
		"Available flights between %s and %s (both ways):",
		booking.NormalizeCity(source), booking.NormalizeCity(destination),
	)))
	for _, f := range result {
		fmt.Fprintf(c.out, "ID: %d | %s | %s %s → %s | Seats: %d | Price: ₹%d | Duration: %s\n",
			f.ID, f.Airline, f.Date, f.DepartureTime, f.ArrivalTime,
			f.Seats, f.Price, duration(f),
		)
	}
	fmt.Fprintln(c.out)
}

func (c *CLI) bookTicket() {
	if len(c.svc.SearchResults()) == 0 {
		fmt.Fprintf(c.out, "\n%s\n\n", bold("Please search flights first before booking!"))
		return
	}

	flightID, ok := c.readInt("Enter flight ID to book: ")
	if !ok {
		return
	}
	numPassengers, ok := c.readInt("How many passengers? (1-3): ")
	if !ok {
		return
	}

	if _, err := c.svc.SelectFlight(flightID, numPassengers); err != nil {
		c.reportError(err)
		return
	}

	passengers := make([]models.Passenger, 0, numPassengers)
	for i := 0; i < numPassengers; i++ {
		fmt.Fprintf(c.out, "\nPassenger %d:\n", i+1)

		name, ok := c.readLine("Enter name: ")
		if !ok {
			return
		}
		age, ok := c.readLine("Enter age: ")
		if !ok {
			return
		}
		genderInput, ok := c.readLine("Enter gender (M/F/O): ")
		if !ok {
			return
		}

		// An invalid gender aborts the whole booking; nothing has been
		// decremented or recorded at this point.
		gender, err := booking.ParseGender(genderInput)
		if err != nil {
			c.reportError(err)
			return
		}

		passengers = append(passengers, models.Passenger{
			Name:   name,
			Age:    age,
			Gender: gender,
		})
	}

	b, err := c.svc.Book(flightID, passengers)
	if err != nil {
		c.reportError(err)
		return
	}

	fmt.Fprintf(c.out, "\n%s\n\n", bold(fmt.Sprintf(
		"Booking Confirmed! Booking ID: %d | PNR: %s", b.BookingID, b.PNR,
	)))
}

func (c *CLI) viewBookings() {
	bookings := c.svc.Bookings()
	if len(bookings) == 0 {
		fmt.Fprintf(c.out, "\n%s\n\n", bold("No bookings yet!"))
		return
	}

	fmt.Fprintf(c.out, "\n%s\n\n", bold("Your Bookings:"))
	for _, b := range bookings {
		fmt.Fprintf(c.out, "Booking ID: %d | PNR: %s | %s | %s | Seats: %d | Total: ₹%d\n",
			b.BookingID, b.PNR, b.Airline, b.Date, b.TotalSeats, b.TotalPrice,
		)
		if f, ok := c.svc.Flight(b.FlightID); ok {
			fmt.Fprintf(c.out, "Departure: %s %s → Arrival: %s | Duration: %s\n",
				f.Date, f.DepartureTime, f.ArrivalTime, duration(f),
			)
		}
		fmt.Fprintln(c.out, "Passengers:")
		for _, p := range b.Passengers {
			fmt.Fprintf(c.out, " - %s (%s yrs, %s)\n", p.Name, p.Age, p.Gender.Display())
		}
		fmt.Fprintln(c.out)
	}
}

func (c *CLI) cancelBooking() {
	bookingID, ok := c.readInt("Enter booking ID to cancel: ")
	if !ok {
		return
	}

	if _, err := c.svc.Cancel(bookingID); err != nil {
		c.reportError(err)
		return
	}
	fmt.Fprintf(c.out, "\n%s\n\n", bold("Booking Cancelled!"))
}

// reportError renders a workflow error with the wording the menu has always
// used. Unknown errors (persistence failures) are shown as-is.
func (c *CLI) reportError(err error) {
	switch {
	case errors.Is(err, booking.ErrNoMatchingRoute):
		fmt.Fprintf(c.out, "\n%s\n\n", bold("No flights available for this route!"))
	case errors.Is(err, booking.ErrNoPriorSearch):
		fmt.Fprintf(c.out, "\n%s\n\n", bold("Please search flights first before booking!"))
	case errors.Is(err, booking.ErrInvalidPassengerCount):
		fmt.Fprintln(c.out, bold("Only 1 to 3 passengers allowed!"))
	case errors.Is(err, booking.ErrInvalidFlightSelection):
		fmt.Fprintf(c.out, "\n%s\n\n", bold("Invalid Flight ID! Select from last search results."))
	case errors.Is(err, booking.ErrInsufficientSeats):
		fmt.Fprintf(c.out, "\n%s\n\n", bold("Not enough seats available!"))
	case errors.Is(err, booking.ErrInvalidGender):
		fmt.Fprintln(c.out, bold("Invalid gender! Use M, F, or O"))
	case errors.Is(err, booking.ErrBookingNotFound):
		fmt.Fprintf(c.out, "\n%s\n\n", bold("Booking ID not found!"))
	default:
		fmt.Fprintf(c.out, "\n%s\n\n", bold("ERROR: "+err.Error()))
	}
}

func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readInt keeps the menu alive on non-numeric entry: it reports the error
// and tells the caller to abort the workflow.
func (c *CLI) readInt(prompt string) (int, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(c.out, bold("Invalid input!"))
		return 0, false
	}
	return n, true
}

func duration(f *models.Flight) string {
	d, err := catalog.Duration(f.DepartureTime, f.ArrivalTime)
	if err != nil {
		return "?"
	}
	return d
}

func bold(s string) string {
	return "\033[1m" + s + "\033[0m"
}
