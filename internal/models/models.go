package models

// Flight represents an available flight in the working catalog.
//
// Date is a calendar date ("2006-01-02"); DepartureTime and ArrivalTime are
// wall-clock times ("15:04") with no timezone attached. Seats is the number
// of seats still available for booking, not the aircraft capacity.
type Flight struct {
	ID            int    `json:"id"`
	Airline       string `json:"airline"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	Date          string `json:"date"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Seats         int    `json:"seats"`
	Price         int    `json:"price"`
}

// Gender is a single-letter passenger gender code.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Display expands the code to a full word for rendering.
func (g Gender) Display() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Passenger is a single traveller on a booking. Age is kept as entered;
// no numeric coercion is applied to it.
type Passenger struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	Gender Gender `json:"gender"`
}

// Booking is a confirmed reservation in the ledger.
//
// Airline and Date are denormalized copies of the referenced flight's fields
// at booking time. FlightID is a non-owning reference: the flight outlives
// the booking and may be rebooked after cancellation.
type Booking struct {
	BookingID  int         `json:"booking_id"`
	PNR        string      `json:"pnr"`
	FlightID   int         `json:"flight_id"`
	Airline    string      `json:"airline"`
	Date       string      `json:"date"`
	Passengers []Passenger `json:"passengers"`
	TotalSeats int         `json:"total_seats"`
	TotalPrice int         `json:"total_price"`
}
