package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusHeld     Status = "held"
	StatusDeleted  Status = "deleted"
	StatusInactive Status = "inactive"
)

const (
	FallbackPoster       = "posters/fallback.jpg"
	FallbackTheaterPhoto = "posters/fallbacktheater.jpg"
)

var DefaultPrice = decimal.NewFromInt(200)

type Movie struct {
	ID        int
	Title     string
	Synopsis  string
	PosterUrl string
	Price     decimal.Decimal
	OnHold    bool
	Status    Status
	CreatedAt time.Time
}

type MovieFilters struct {
	Page     int
	PageSize int
	Term     string
	Sort     string
}

// sortColumns maps the accepted sort keys to their columns.
var sortColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"price":     "price",
	"createdAt": "created_at",
}

func (f MovieFilters) SortColumn() string {
	if column, ok := sortColumns[strings.TrimPrefix(f.Sort, "-")]; ok {
		return column
	}

	return "id"
}

func (f MovieFilters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (f MovieFilters) Limit() int {
	return f.PageSize
}

func (f MovieFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// Metadata describes the page of a movie listing. An empty listing still
// reports a single last page.
type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

// Paginate returns the listing metadata for totalRecords matching movies.
func (f MovieFilters) Paginate(totalRecords int) *Metadata {
	lastPage := 1
	if f.PageSize > 0 && totalRecords > 0 {
		lastPage = (totalRecords + f.PageSize - 1) / f.PageSize
	}

	return &Metadata{
		CurrentPage:  f.Page,
		FirstPage:    1,
		LastPage:     lastPage,
		PageSize:     f.PageSize,
		TotalRecords: totalRecords,
	}
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	ToggleHold(ctx context.Context, id int) (*Movie, error)
	// Delete removes the movie and its shows and clears it from every screen
	// currently playing it. It returns the number of screens cleared.
	Delete(ctx context.Context, movie *Movie) (int, error)
}
