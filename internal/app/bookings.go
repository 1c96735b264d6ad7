package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/events"
	"github.com/metinatakli/cinema-booking-system/internal/guard"
	"github.com/metinatakli/cinema-booking-system/internal/mailer"
	"github.com/oapi-codegen/runtime/types"
)

const publishTimeout = 5 * time.Second

func (app *Application) GetBookedSeats(w http.ResponseWriter, r *http.Request, params api.GetBookedSeatsParams) {
	slot, ok := showSlotFromParams(params)
	if !ok {
		app.errorResponse(w, r, http.StatusBadRequest, "Missing parameters")
		return
	}

	seats, err := app.bookingRepo.GetBookedSeats(r.Context(), slot)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.BookedSeatsResponse{Seats: seats}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) BookSeats(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.BookSeatsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userID := app.contextGetUserId(r)

	booking, err := app.guard.BookSeats(r.Context(), guard.BookingRequest{
		UserID:  userID,
		Theater: strings.TrimSpace(input.Theater),
		Movie:   strings.TrimSpace(input.Movie),
		Screen:  strings.TrimSpace(input.Screen),
		Date:    input.Date.Time,
		Time:    input.Time,
		Seats:   input.Seats,
	})
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.metrics.bookingCreated(r.Context(), booking)
	logger.Info("booking created", "booking_id", booking.ID, "seats", len(booking.Seats))

	app.background(logger, "booking notifications", func() {
		app.notifyBooking(booking)
	})

	resp := api.BookSeatsResponse{
		Message: "Booking successful",
		Booking: toBookingResponse(*booking),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// notifyBooking mails the confirmation and publishes the booking event.
// Failures are logged and never reach the client.
func (app *Application) notifyBooking(booking *domain.Booking) {
	logger := app.logger.With("booking_id", booking.ID, "user_id", booking.UserID)

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := app.publisher.PublishBookingConfirmed(ctx, events.NewBookingConfirmed(booking))
	if err != nil {
		logger.Error("failed to publish booking event", "error", err)
	}

	user, err := app.userRepo.GetById(ctx, booking.UserID)
	if err != nil {
		logger.Error("failed to load user for booking confirmation", "error", err)
		return
	}

	data := mailer.NewBookingConfirmation(user.Name, booking)

	err = app.mailer.Send(user.Email, mailer.BookingConfirmationTemplate, data)
	if err != nil {
		logger.Error("failed to send booking confirmation", "error", err)
		return
	}

	logger.Info("booking confirmation sent")
}

func (app *Application) GetCurrentBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := app.bookingRepo.ListUpcomingByUser(r.Context(), app.contextGetUserId(r), time.Now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookings(w, r, bookings)
}

func (app *Application) GetPastBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := app.bookingRepo.ListPastByUser(r.Context(), app.contextGetUserId(r), time.Now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookings(w, r, bookings)
}

func (app *Application) writeBookings(w http.ResponseWriter, r *http.Request, bookings []domain.Booking) {
	resp := api.BookingListResponse{
		Bookings: make([]api.BookingResponse, len(bookings)),
	}

	for i, b := range bookings {
		resp.Bookings[i] = toBookingResponse(b)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) bookingErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		conflict *domain.SeatConflictError
		invalid  *domain.InvalidInputError
	)

	switch {
	case errors.As(err, &invalid):
		app.errorResponse(w, r, http.StatusBadRequest, invalid.Reason)
	case errors.Is(err, domain.ErrMovieNotFound):
		app.resourceNotFoundResponse(w, r, "Movie")
	case errors.Is(err, domain.ErrTheaterNotFound):
		app.resourceNotFoundResponse(w, r, "Theater")
	case errors.Is(err, domain.ErrMovieOnHold):
		app.forbiddenResponse(w, r, "This movie is temporarily on hold and cannot be booked.")
	case errors.Is(err, domain.ErrTheaterOnHold):
		app.forbiddenResponse(w, r, "This theater is temporarily on hold and cannot be booked.")
	case errors.As(err, &conflict):
		app.metrics.seatConflict(r.Context(), conflictSeatsTaken)
		app.seatConflictResponse(w, r, conflict.Seats)
	case errors.Is(err, domain.ErrSeatAlreadyReserved):
		app.metrics.seatConflict(r.Context(), conflictLostRace)
		app.seatConflictResponse(w, r, []string{})
	case errors.Is(err, domain.ErrSeatsAlreadyOwned):
		app.metrics.seatConflict(r.Context(), conflictAlreadyOwned)
		app.errorResponse(w, r, http.StatusConflict, "You have already booked some of these seats for this show")
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// showSlotFromParams builds the show tuple of a booked seats query. It
// reports false when a parameter is missing or malformed.
func showSlotFromParams(params api.GetBookedSeatsParams) (domain.ShowSlot, bool) {
	value := func(p *string) string {
		if p == nil {
			return ""
		}
		return strings.TrimSpace(*p)
	}

	slot := domain.ShowSlot{
		Theater: value(params.Theater),
		Movie:   value(params.Movie),
		Screen:  value(params.Screen),
		Time:    value(params.Time),
	}

	if slot.Theater == "" || slot.Movie == "" || slot.Screen == "" || slot.Time == "" {
		return domain.ShowSlot{}, false
	}

	day, err := parseDate(value(params.Date))
	if err != nil {
		return domain.ShowSlot{}, false
	}

	slot.Date = day

	return slot, true
}

func toBookingResponse(b domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:        b.ID,
		UserId:    b.UserID,
		Theater:   b.Theater,
		Movie:     b.Movie,
		Screen:    b.Screen,
		Date:      types.Date{Time: b.Date},
		Time:      b.Time,
		Seats:     b.Seats,
		CreatedAt: b.CreatedAt,
	}
}
