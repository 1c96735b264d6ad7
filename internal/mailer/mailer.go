package mailer

import (
	"strings"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const (
	WelcomeTemplate             = "user_welcome.tmpl"
	BookingConfirmationTemplate = "booking_confirmation.tmpl"
)

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}

// Welcome is rendered by WelcomeTemplate after signup.
type Welcome struct {
	Name string
}

// BookingConfirmation is rendered by BookingConfirmationTemplate once a
// booking has been stored.
type BookingConfirmation struct {
	Name      string
	BookingID int
	Movie     string
	Theater   string
	Screen    string
	Date      string
	Time      string
	Seats     []string
}

func NewBookingConfirmation(name string, booking *domain.Booking) BookingConfirmation {
	return BookingConfirmation{
		Name:      name,
		BookingID: booking.ID,
		Movie:     booking.Movie,
		Theater:   booking.Theater,
		Screen:    booking.Screen,
		Date:      booking.Date.Format(domain.DateLayout),
		Time:      booking.Time,
		Seats:     booking.Seats,
	}
}

func (c BookingConfirmation) SeatList() string {
	return strings.Join(c.Seats, ", ")
}
