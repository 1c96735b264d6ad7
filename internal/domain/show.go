package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ValidShowTime reports whether value is a zero-padded 24h "HH:MM" time.
func ValidShowTime(value string) bool {
	if len(value) != len(TimeLayout) {
		return false
	}

	_, err := time.Parse(TimeLayout, value)
	return err == nil
}

type Show struct {
	ID         int
	MovieID    int
	TheaterID  int
	Screen     string
	Date       time.Time
	Time       string
	Price      decimal.Decimal
	Status     Status
	Tags       []string
	ModifiedBy *int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Populated on reads.
	MovieTitle     string
	MoviePosterUrl string
	TheaterName    string
	TheaterAddress string
}

type ShowFilter struct {
	MovieID   int
	TheaterID int
}

type ShowRepository interface {
	// Create fails with ErrDuplicateShow when the (theater, screen, date,
	// time) slot is already taken.
	Create(ctx context.Context, show *Show) error
	GetById(ctx context.Context, id int) (*Show, error)
	List(ctx context.Context, filter ShowFilter) ([]Show, error)
	Update(ctx context.Context, show *Show) error
	Delete(ctx context.Context, id int) error
	DeleteByMovieAndTheater(ctx context.Context, movieID, theaterID int) (int64, error)
	// ScreensInUse lists the screen names of a theater that already have a
	// show at the given date and time.
	ScreensInUse(ctx context.Context, theaterID int, date time.Time, showTime string) ([]string, error)
}
