package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/cx-tal-miterani/flight-reservation-cli/internal/models"
)

// MockReservationService is a mock implementation of cli.ReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Search(source, destination string) ([]*models.Flight, error) {
	args := m.Called(source, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Flight), args.Error(1)
}

func (m *MockReservationService) SearchResults() []*models.Flight {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*models.Flight)
}

func (m *MockReservationService) SelectFlight(flightID, numPassengers int) (*models.Flight, error) {
	args := m.Called(flightID, numPassengers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockReservationService) Book(flightID int, passengers []models.Passenger) (*models.Booking, error) {
	args := m.Called(flightID, passengers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockReservationService) Bookings() []*models.Booking {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*models.Booking)
}

func (m *MockReservationService) Flight(id int) (*models.Flight, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Flight), args.Bool(1)
}

func (m *MockReservationService) Cancel(bookingID int) (*models.Booking, error) {
	args := m.Called(bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
