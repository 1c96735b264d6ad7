package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrRecordNotFound    = errors.New("record not found")
	ErrEditConflict      = errors.New("edit conflict")

	ErrMovieNotFound   = errors.New("movie not found")
	ErrTheaterNotFound = errors.New("theater not found")
	ErrScreenNotFound  = errors.New("screen not found")
	ErrShowNotFound    = errors.New("show not found")

	ErrScreenNameTaken     = errors.New("screen name already exists in this theater")
	ErrDuplicateShow       = errors.New("show already exists for this screen, date, and time")
	ErrSeatAlreadyReserved = errors.New("some seats already booked")
	ErrSeatsAlreadyOwned   = errors.New("you have already booked some of these seats for this show")

	ErrMovieOnHold   = errors.New("this movie is temporarily on hold and cannot be booked")
	ErrTheaterOnHold = errors.New("this theater is temporarily on hold and cannot be booked")

	ErrInvalidInput = errors.New("invalid input")
	ErrHasBookings  = errors.New("existing bookings block deletion")
)

// SeatConflictError reports the requested seats that are already taken for a show.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSeatAlreadyReserved, strings.Join(e.Seats, ", "))
}

func (e *SeatConflictError) Unwrap() error {
	return ErrSeatAlreadyReserved
}

// BlockingBookingsError is returned when a movie or theater cannot be deleted
// because bookings still reference it.
type BlockingBookingsError struct {
	Resource string
	Count    int
}

func (e *BlockingBookingsError) Error() string {
	return fmt.Sprintf("cannot delete %s with %d existing bookings", e.Resource, e.Count)
}

func (e *BlockingBookingsError) Unwrap() error {
	return ErrHasBookings
}

// InvalidInputError carries a client facing reason for an InvalidInput failure.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

func NewInvalidInput(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}
