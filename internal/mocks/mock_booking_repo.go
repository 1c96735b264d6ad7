package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetBookedSeats(ctx context.Context, slot domain.ShowSlot) ([]string, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepo) GetUserSeats(ctx context.Context, userID int, slot domain.ShowSlot) ([]string, error) {
	args := m.Called(ctx, userID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepo) CountByMovie(ctx context.Context, title string) (int, error) {
	args := m.Called(ctx, title)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepo) CountByTheater(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepo) ListUpcomingByUser(ctx context.Context, userID int, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListPastByUser(ctx context.Context, userID int, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
