package domain

import (
	"context"
	"time"
)

const MaxSeatsPerBooking = 6

// ShowSlot identifies a single screening as seen by bookings. Bookings refer
// to movies and theaters by name, not by id.
type ShowSlot struct {
	Theater string
	Movie   string
	Screen  string
	Date    time.Time
	Time    string
}

type Booking struct {
	ID        int
	UserID    int
	Theater   string
	Movie     string
	Screen    string
	Date      time.Time
	Time      string
	Seats     []string
	CreatedAt time.Time
}

func (b *Booking) Slot() ShowSlot {
	return ShowSlot{
		Theater: b.Theater,
		Movie:   b.Movie,
		Screen:  b.Screen,
		Date:    b.Date,
		Time:    b.Time,
	}
}

type BookingRepository interface {
	// Create persists the booking and all its seats or nothing. A seat taken
	// by a concurrent writer surfaces as ErrSeatAlreadyReserved.
	Create(ctx context.Context, booking *Booking) error
	GetBookedSeats(ctx context.Context, slot ShowSlot) ([]string, error)
	GetUserSeats(ctx context.Context, userID int, slot ShowSlot) ([]string, error)
	CountByMovie(ctx context.Context, title string) (int, error)
	CountByTheater(ctx context.Context, name string) (int, error)
	ListUpcomingByUser(ctx context.Context, userID int, now time.Time) ([]Booking, error)
	ListPastByUser(ctx context.Context, userID int, now time.Time) ([]Booking, error)
}
