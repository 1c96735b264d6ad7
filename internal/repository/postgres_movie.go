package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

const movieColumns = `id, title, synopsis, poster_url, price, on_hold, status, created_at`

func scanMovie(row scanner, movie *domain.Movie, extra ...any) error {
	dest := append(extra,
		&movie.ID,
		&movie.Title,
		&movie.Synopsis,
		&movie.PosterUrl,
		&movie.Price,
		&movie.OnHold,
		&movie.Status,
		&movie.CreatedAt,
	)

	return row.Scan(dest...)
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	query := fmt.Sprintf(`SELECT count(*) OVER(), %s
		FROM movies
		WHERE (title ILIKE '%%' || $1 || '%%'
			OR to_tsvector('english', synopsis) @@ plainto_tsquery('english', $1)
			OR $1 = '')
		ORDER BY %s %s, id ASC
		LIMIT $2 OFFSET $3`, movieColumns, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(ctx, query, filters.Term, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := scanMovie(rows, &movie, &totalRecords)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := filters.Paginate(totalRecords)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie domain.Movie

	err := scanMovie(p.db.QueryRow(ctx, query, id), &movie)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

// GetByTitle returns the oldest movie with exactly the given title.
func (p *PostgresMovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE title = $1 ORDER BY id LIMIT 1`

	var movie domain.Movie

	err := scanMovie(p.db.QueryRow(ctx, query, title), &movie)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (title, synopsis, poster_url, price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, on_hold, created_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Synopsis,
		movie.PosterUrl,
		movie.Price,
		movie.Status).Scan(&movie.ID, &movie.OnHold, &movie.CreatedAt)
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, synopsis = $3, poster_url = $4, price = $5, status = $6
		WHERE id = $1
	`

	tag, err := p.db.Exec(
		ctx,
		query,
		movie.ID,
		movie.Title,
		movie.Synopsis,
		movie.PosterUrl,
		movie.Price,
		movie.Status)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) ToggleHold(ctx context.Context, id int) (*domain.Movie, error) {
	query := `UPDATE movies SET on_hold = NOT on_hold WHERE id = $1 RETURNING ` + movieColumns

	var movie domain.Movie

	err := scanMovie(p.db.QueryRow(ctx, query, id), &movie)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, movie *domain.Movie) (int, error) {
	cleared := 0

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM shows WHERE movie_id = $1`, movie.ID)
		if err != nil {
			return err
		}

		ids, err := screensPlaying(ctx, tx, movie.Title)
		if err != nil {
			return err
		}

		if len(ids) > 0 {
			tag, err := tx.Exec(ctx, `UPDATE screens SET now_playing = '' WHERE id = ANY($1)`, ids)
			if err != nil {
				return err
			}

			cleared = int(tag.RowsAffected())
		}

		tag, err := tx.Exec(ctx, `DELETE FROM movies WHERE id = $1`, movie.ID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return cleared, nil
}

// screensPlaying locks and returns the ids of every screen whose assignment
// names the given movie title.
func screensPlaying(ctx context.Context, tx pgx.Tx, title string) ([]int64, error) {
	rows, err := tx.Query(ctx, `SELECT id, now_playing FROM screens WHERE now_playing <> '' FOR UPDATE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}

	for rows.Next() {
		var id int64
		var nowPlaying string

		if err := rows.Scan(&id, &nowPlaying); err != nil {
			return nil, err
		}

		if domain.SameTitle(nowPlaying, title) {
			ids = append(ids, id)
		}
	}

	return ids, rows.Err()
}
