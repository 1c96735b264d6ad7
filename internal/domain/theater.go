package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Theater struct {
	ID        int
	Name      string
	Address   string
	PhotoUrl  string
	Price     decimal.Decimal
	OnHold    bool
	Status    Status
	Screens   []Screen
	CreatedAt time.Time
}

// Screen is one auditorium of a theater. NowPlaying is empty when no movie
// is assigned.
type Screen struct {
	Name       string
	NowPlaying string
	Price      decimal.Decimal
	Status     Status
}

func NewScreen(name string) Screen {
	return Screen{
		Name:   name,
		Price:  DefaultPrice,
		Status: StatusActive,
	}
}

// Screen returns the screen with the given name, if the theater has one.
func (t *Theater) Screen(name string) (*Screen, bool) {
	for i := range t.Screens {
		if t.Screens[i].Name == name {
			return &t.Screens[i], true
		}
	}

	return nil, false
}

type TheaterRepository interface {
	GetAll(ctx context.Context) ([]*Theater, error)
	GetById(ctx context.Context, id int) (*Theater, error)
	GetByName(ctx context.Context, name string) (*Theater, error)
	Create(ctx context.Context, theater *Theater) error
	Update(ctx context.Context, theater *Theater) error
	ToggleHold(ctx context.Context, id int) (*Theater, error)
	// Delete removes the theater, its screens and its shows.
	Delete(ctx context.Context, id int) error

	AddScreen(ctx context.Context, theaterID int, screen Screen) error
	// RemoveScreen deletes the screen and every show scheduled on it.
	RemoveScreen(ctx context.Context, theaterID int, screenName string) error
	SetNowPlaying(ctx context.Context, theaterID int, screenName, movieTitle string) error
}
