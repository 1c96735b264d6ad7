package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

const showSelect = `
	SELECT
		s.id,
		s.movie_id,
		s.theater_id,
		s.screen_name,
		s.show_date,
		s.show_time,
		s.price,
		s.status,
		s.tags,
		s.modified_by,
		s.created_at,
		s.updated_at,
		m.title,
		m.poster_url,
		t.name,
		t.address
	FROM shows s
	JOIN movies m ON m.id = s.movie_id
	JOIN theaters t ON t.id = s.theater_id
`

func scanShow(row scanner) (*domain.Show, error) {
	var show domain.Show

	err := row.Scan(
		&show.ID,
		&show.MovieID,
		&show.TheaterID,
		&show.Screen,
		&show.Date,
		&show.Time,
		&show.Price,
		&show.Status,
		&show.Tags,
		&show.ModifiedBy,
		&show.CreatedAt,
		&show.UpdatedAt,
		&show.MovieTitle,
		&show.MoviePosterUrl,
		&show.TheaterName,
		&show.TheaterAddress,
	)
	if err != nil {
		return nil, err
	}

	return &show, nil
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `
		INSERT INTO shows (movie_id, theater_id, screen_name, show_date, show_time, price, status, tags, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		show.MovieID,
		show.TheaterID,
		show.Screen,
		show.Date,
		show.Time,
		show.Price,
		show.Status,
		show.Tags,
		show.ModifiedBy).Scan(&show.ID, &show.CreatedAt, &show.UpdatedAt)

	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicateShow
		case isForeignKeyViolation(err):
			return domain.ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.Show, error) {
	show, err := scanShow(p.db.QueryRow(ctx, showSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return show, nil
}

func (p *PostgresShowRepository) List(ctx context.Context, filter domain.ShowFilter) ([]domain.Show, error) {
	query := showSelect + `
		WHERE ($1 = 0 OR s.movie_id = $1)
			AND ($2 = 0 OR s.theater_id = $2)
		ORDER BY s.show_date, s.show_time, s.id
	`

	rows, err := p.db.Query(ctx, query, filter.MovieID, filter.TheaterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []domain.Show{}

	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, err
		}

		shows = append(shows, *show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (p *PostgresShowRepository) Update(ctx context.Context, show *domain.Show) error {
	query := `
		UPDATE shows
		SET screen_name = $2,
			show_date = $3,
			show_time = $4,
			price = $5,
			status = $6,
			tags = $7,
			modified_by = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		show.ID,
		show.Screen,
		show.Date,
		show.Time,
		show.Price,
		show.Status,
		show.Tags,
		show.ModifiedBy).Scan(&show.UpdatedAt)

	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.ErrRecordNotFound
		case isUniqueViolation(err):
			return domain.ErrDuplicateShow
		default:
			return err
		}
	}

	return nil
}

func (p *PostgresShowRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresShowRepository) DeleteByMovieAndTheater(ctx context.Context, movieID, theaterID int) (int64, error) {
	tag, err := p.db.Exec(ctx, `DELETE FROM shows WHERE movie_id = $1 AND theater_id = $2`, movieID, theaterID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (p *PostgresShowRepository) ScreensInUse(
	ctx context.Context,
	theaterID int,
	date time.Time,
	showTime string) ([]string, error) {

	query := `
		SELECT DISTINCT screen_name
		FROM shows
		WHERE theater_id = $1 AND show_date = $2 AND show_time = $3
	`

	rows, err := p.db.Query(ctx, query, theaterID, date, showTime)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[string])
}
