// Package guard enforces the exclusivity rules for shared scheduling state:
// screen assignments, show slots and seat bookings.
//
// Every operation reads the current state from the repositories, checks the
// invariant and only then writes. Seat bookings additionally take a short
// lived seat hold and rely on a unique constraint at write time, so two
// concurrent requests for the same seat cannot both succeed.
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

// SeatLocker holds seats of a show for the duration of a booking attempt.
// Lock fails with a *domain.SeatConflictError listing the seats held by
// someone else; the returned release func must always be called on success.
type SeatLocker interface {
	Lock(ctx context.Context, slot domain.ShowSlot, seats []string) (release func(), err error)
}

type Guard struct {
	movies   domain.MovieRepository
	theaters domain.TheaterRepository
	shows    domain.ShowRepository
	bookings domain.BookingRepository
	locker   SeatLocker
	logger   *slog.Logger
}

func New(
	movies domain.MovieRepository,
	theaters domain.TheaterRepository,
	shows domain.ShowRepository,
	bookings domain.BookingRepository,
	locker SeatLocker,
	logger *slog.Logger) *Guard {

	if locker == nil {
		locker = nopLocker{}
	}

	return &Guard{
		movies:   movies,
		theaters: theaters,
		shows:    shows,
		bookings: bookings,
		locker:   locker,
		logger:   logger,
	}
}

type nopLocker struct{}

func (nopLocker) Lock(context.Context, domain.ShowSlot, []string) (func(), error) {
	return func() {}, nil
}

// AssignMovie sets the movie playing on a screen, replacing any previous
// assignment. The same movie may run on any number of screens.
func (g *Guard) AssignMovie(ctx context.Context, theaterID int, screenName, movieTitle string) (*domain.Theater, error) {
	if strings.TrimSpace(movieTitle) == "" {
		return nil, domain.NewInvalidInput("movie title is required")
	}

	return g.setNowPlaying(ctx, theaterID, screenName, movieTitle)
}

// FreeScreen clears the movie assigned to a screen.
func (g *Guard) FreeScreen(ctx context.Context, theaterID int, screenName string) (*domain.Theater, error) {
	return g.setNowPlaying(ctx, theaterID, screenName, "")
}

func (g *Guard) setNowPlaying(ctx context.Context, theaterID int, screenName, movieTitle string) (*domain.Theater, error) {
	theater, err := g.theater(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	screen, ok := theater.Screen(screenName)
	if !ok {
		return nil, domain.ErrScreenNotFound
	}

	err = g.theaters.SetNowPlaying(ctx, theaterID, screenName, movieTitle)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrScreenNotFound
		}

		return nil, err
	}

	screen.NowPlaying = movieTitle

	return theater, nil
}

// AddScreen appends an unassigned screen to a theater. Screen names are
// unique within a theater.
func (g *Guard) AddScreen(ctx context.Context, theaterID int, screenName string) (*domain.Theater, error) {
	if strings.TrimSpace(screenName) == "" {
		return nil, domain.NewInvalidInput("screen name is required")
	}

	theater, err := g.theater(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	if _, exists := theater.Screen(screenName); exists {
		return nil, domain.ErrScreenNameTaken
	}

	screen := domain.NewScreen(screenName)

	err = g.theaters.AddScreen(ctx, theaterID, screen)
	if err != nil {
		return nil, err
	}

	theater.Screens = append(theater.Screens, screen)

	return theater, nil
}

// RemoveScreen deletes a screen together with every show scheduled on it.
func (g *Guard) RemoveScreen(ctx context.Context, theaterID int, screenName string) (*domain.Theater, error) {
	theater, err := g.theater(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	if _, ok := theater.Screen(screenName); !ok {
		return nil, domain.ErrScreenNotFound
	}

	err = g.theaters.RemoveScreen(ctx, theaterID, screenName)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrScreenNotFound
		}

		return nil, err
	}

	theater.Screens = slices.DeleteFunc(theater.Screens, func(s domain.Screen) bool {
		return s.Name == screenName
	})

	return theater, nil
}

// AvailableScreens lists the screens of a theater that have no show at the
// given date and time.
func (g *Guard) AvailableScreens(ctx context.Context, theaterID int, date time.Time, showTime string) ([]domain.Screen, error) {
	theater, err := g.theater(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	inUse, err := g.shows.ScreensInUse(ctx, theaterID, date, showTime)
	if err != nil {
		return nil, err
	}

	available := make([]domain.Screen, 0, len(theater.Screens))
	for _, screen := range theater.Screens {
		if !slices.Contains(inUse, screen.Name) {
			available = append(available, screen)
		}
	}

	return available, nil
}

type ShowBatch struct {
	MovieID    int
	TheaterID  int
	Screen     string
	Price      decimal.Decimal
	Dates      []time.Time
	Times      []string
	Status     domain.Status
	Tags       []string
	ModifiedBy *int
}

// SkippedSlot is a (date, time) pair of a batch that could not be created.
type SkippedSlot struct {
	Date   time.Time
	Time   string
	Reason string
	Err    error
}

type ShowBatchResult struct {
	Created []domain.Show
	Skipped []SkippedSlot
}

func (r *ShowBatchResult) Reasons() []string {
	reasons := make([]string, len(r.Skipped))
	for i, s := range r.Skipped {
		reasons[i] = s.Reason
	}

	return reasons
}

// CreateShows schedules one show per (date, time) pair of the batch. A slot
// already taken on the screen is skipped and reported; its siblings are
// created independently.
func (g *Guard) CreateShows(ctx context.Context, batch ShowBatch) (*ShowBatchResult, error) {
	if len(batch.Dates) == 0 || len(batch.Times) == 0 {
		return nil, domain.NewInvalidInput("at least one date and one time are required")
	}

	movie, err := g.movie(ctx, batch.MovieID)
	if err != nil {
		return nil, err
	}

	theater, err := g.theater(ctx, batch.TheaterID)
	if err != nil {
		return nil, err
	}

	if _, ok := theater.Screen(batch.Screen); !ok {
		return nil, domain.ErrScreenNotFound
	}

	status := batch.Status
	if status == "" {
		status = domain.StatusActive
	}

	tags := batch.Tags
	if tags == nil {
		tags = []string{}
	}

	result := &ShowBatchResult{
		Created: []domain.Show{},
		Skipped: []SkippedSlot{},
	}

	for _, date := range batch.Dates {
		for _, showTime := range batch.Times {
			show := domain.Show{
				MovieID:    batch.MovieID,
				TheaterID:  batch.TheaterID,
				Screen:     batch.Screen,
				Date:       date,
				Time:       showTime,
				Price:      batch.Price,
				Status:     status,
				Tags:       tags,
				ModifiedBy: batch.ModifiedBy,

				MovieTitle:     movie.Title,
				MoviePosterUrl: movie.PosterUrl,
				TheaterName:    theater.Name,
				TheaterAddress: theater.Address,
			}

			err := g.shows.Create(ctx, &show)
			if err != nil {
				result.Skipped = append(result.Skipped, g.skip(date, showTime, err))
				continue
			}

			result.Created = append(result.Created, show)
		}
	}

	return result, nil
}

func (g *Guard) skip(date time.Time, showTime string, err error) SkippedSlot {
	day := date.Format(domain.DateLayout)
	slot := SkippedSlot{Date: date, Time: showTime, Err: err}

	if errors.Is(err, domain.ErrDuplicateShow) {
		slot.Reason = fmt.Sprintf("Show already exists for %s at %s", day, showTime)
		return slot
	}

	g.logger.Error("failed to create show", "date", day, "time", showTime, "error", err)
	slot.Reason = fmt.Sprintf("Error creating show for %s at %s", day, showTime)

	return slot
}

type BookingRequest struct {
	UserID  int
	Theater string
	Movie   string
	Screen  string
	Date    time.Time
	Time    string
	Seats   []string
}

func (r BookingRequest) slot() domain.ShowSlot {
	return domain.ShowSlot{
		Theater: r.Theater,
		Movie:   r.Movie,
		Screen:  r.Screen,
		Date:    r.Date,
		Time:    r.Time,
	}
}

// BookSeats reserves all requested seats for one user or none of them.
func (g *Guard) BookSeats(ctx context.Context, req BookingRequest) (*domain.Booking, error) {
	err := validateBookingRequest(req)
	if err != nil {
		return nil, err
	}

	movie, err := g.movies.GetByTitle(ctx, req.Movie)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrMovieNotFound)
	}

	if movie.OnHold {
		return nil, domain.ErrMovieOnHold
	}

	theater, err := g.theaters.GetByName(ctx, req.Theater)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTheaterNotFound)
	}

	if theater.OnHold {
		return nil, domain.ErrTheaterOnHold
	}

	slot := req.slot()

	release, err := g.locker.Lock(ctx, slot, req.Seats)
	if err != nil {
		return nil, err
	}
	defer release()

	booked, err := g.bookings.GetBookedSeats(ctx, slot)
	if err != nil {
		return nil, err
	}

	if conflicts := domain.IntersectSeats(req.Seats, booked); len(conflicts) > 0 {
		return nil, &domain.SeatConflictError{Seats: conflicts}
	}

	owned, err := g.bookings.GetUserSeats(ctx, req.UserID, slot)
	if err != nil {
		return nil, err
	}

	if len(domain.IntersectSeats(req.Seats, owned)) > 0 {
		return nil, domain.ErrSeatsAlreadyOwned
	}

	booking := &domain.Booking{
		UserID:  req.UserID,
		Theater: req.Theater,
		Movie:   req.Movie,
		Screen:  req.Screen,
		Date:    req.Date,
		Time:    req.Time,
		Seats:   slices.Clone(req.Seats),
	}

	err = g.bookings.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, domain.ErrSeatAlreadyReserved) {
			return nil, g.lostRace(ctx, slot, req.Seats)
		}

		return nil, err
	}

	return booking, nil
}

// lostRace builds the conflict error for a booking whose seats were taken
// between the availability check and the write.
func (g *Guard) lostRace(ctx context.Context, slot domain.ShowSlot, seats []string) error {
	booked, err := g.bookings.GetBookedSeats(ctx, slot)
	if err != nil {
		g.logger.Warn("failed to re-read booked seats after write conflict", "error", err)
		return domain.ErrSeatAlreadyReserved
	}

	conflicts := domain.IntersectSeats(seats, booked)
	if len(conflicts) == 0 {
		return domain.ErrSeatAlreadyReserved
	}

	return &domain.SeatConflictError{Seats: conflicts}
}

func validateBookingRequest(req BookingRequest) error {
	if strings.TrimSpace(req.Theater) == "" ||
		strings.TrimSpace(req.Movie) == "" ||
		strings.TrimSpace(req.Screen) == "" ||
		req.Date.IsZero() ||
		strings.TrimSpace(req.Time) == "" ||
		len(req.Seats) == 0 {

		return domain.NewInvalidInput("Missing or invalid parameters")
	}

	if len(req.Seats) > domain.MaxSeatsPerBooking {
		return domain.NewInvalidInput("Cannot book more than %d seats at once", domain.MaxSeatsPerBooking)
	}

	if !domain.ValidShowTime(req.Time) {
		return domain.NewInvalidInput("time must be in HH:MM format")
	}

	for _, seat := range req.Seats {
		if strings.TrimSpace(seat) == "" {
			return domain.NewInvalidInput("seat identifiers must not be empty")
		}
	}

	if dup := domain.DuplicateSeats(req.Seats); len(dup) > 0 {
		return domain.NewInvalidInput("seats requested more than once: %s", strings.Join(dup, ", "))
	}

	return nil
}

// DeleteMovie removes a movie that no booking refers to. Its shows are
// deleted and every screen playing it is cleared.
func (g *Guard) DeleteMovie(ctx context.Context, id int) (*domain.Movie, error) {
	movie, err := g.movie(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := g.bookings.CountByMovie(ctx, movie.Title)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return nil, &domain.BlockingBookingsError{Resource: "movie", Count: count}
	}

	cleared, err := g.movies.Delete(ctx, movie)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrMovieNotFound)
	}

	g.logger.Info("movie deleted", "movie_id", movie.ID, "screens_cleared", cleared)

	return movie, nil
}

// DeleteTheater removes a theater that no booking refers to, together with
// its screens and shows.
func (g *Guard) DeleteTheater(ctx context.Context, id int) (*domain.Theater, error) {
	theater, err := g.theater(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := g.bookings.CountByTheater(ctx, theater.Name)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return nil, &domain.BlockingBookingsError{Resource: "theater", Count: count}
	}

	err = g.theaters.Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTheaterNotFound)
	}

	return theater, nil
}

func (g *Guard) movie(ctx context.Context, id int) (*domain.Movie, error) {
	movie, err := g.movies.GetById(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrMovieNotFound)
	}

	return movie, nil
}

func (g *Guard) theater(ctx context.Context, id int) (*domain.Theater, error) {
	theater, err := g.theaters.GetById(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTheaterNotFound)
	}

	return theater, nil
}

func notFoundAs(err, target error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return target
	}

	return err
}
