package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

const theaterSelect = `
	SELECT
		t.id,
		t.name,
		t.address,
		t.photo_url,
		t.price,
		t.on_hold,
		t.status,
		t.created_at,
		COALESCE(jsonb_agg(
			jsonb_build_object(
				'name', s.name,
				'nowPlaying', s.now_playing,
				'price', s.price,
				'status', s.status
			) ORDER BY s.id) FILTER (WHERE s.id IS NOT NULL), '[]') AS screens
	FROM theaters t
	LEFT JOIN screens s ON s.theater_id = t.id
`

func scanTheater(row scanner) (*domain.Theater, error) {
	var theater domain.Theater
	var screensJson json.RawMessage

	err := row.Scan(
		&theater.ID,
		&theater.Name,
		&theater.Address,
		&theater.PhotoUrl,
		&theater.Price,
		&theater.OnHold,
		&theater.Status,
		&theater.CreatedAt,
		&screensJson,
	)
	if err != nil {
		return nil, err
	}

	theater.Screens = []domain.Screen{}
	if len(screensJson) > 0 {
		if err := json.Unmarshal(screensJson, &theater.Screens); err != nil {
			return nil, err
		}
	}

	return &theater, nil
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context) ([]*domain.Theater, error) {
	query := theaterSelect + ` GROUP BY t.id ORDER BY t.id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := []*domain.Theater{}

	for rows.Next() {
		theater, err := scanTheater(rows)
		if err != nil {
			return nil, err
		}

		theaters = append(theaters, theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (p *PostgresTheaterRepository) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	query := theaterSelect + ` WHERE t.id = $1 GROUP BY t.id`

	return p.getOne(ctx, query, id)
}

// GetByName returns the oldest theater with exactly the given name.
func (p *PostgresTheaterRepository) GetByName(ctx context.Context, name string) (*domain.Theater, error) {
	query := theaterSelect + ` WHERE t.name = $1 GROUP BY t.id ORDER BY t.id LIMIT 1`

	return p.getOne(ctx, query, name)
}

func (p *PostgresTheaterRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Theater, error) {
	theater, err := scanTheater(p.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return theater, nil
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO theaters (name, address, photo_url, price, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, on_hold, created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			theater.Name,
			theater.Address,
			theater.PhotoUrl,
			theater.Price,
			theater.Status).Scan(&theater.ID, &theater.OnHold, &theater.CreatedAt)

		if err != nil {
			return err
		}

		for _, screen := range theater.Screens {
			if err := insertScreen(ctx, tx, theater.ID, screen); err != nil {
				return err
			}
		}

		if theater.Screens == nil {
			theater.Screens = []domain.Screen{}
		}

		return nil
	})
}

func (p *PostgresTheaterRepository) Update(ctx context.Context, theater *domain.Theater) error {
	query := `
		UPDATE theaters
		SET name = $2, address = $3, photo_url = $4, price = $5, status = $6
		WHERE id = $1
	`

	tag, err := p.db.Exec(
		ctx,
		query,
		theater.ID,
		theater.Name,
		theater.Address,
		theater.PhotoUrl,
		theater.Price,
		theater.Status)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresTheaterRepository) ToggleHold(ctx context.Context, id int) (*domain.Theater, error) {
	tag, err := p.db.Exec(ctx, `UPDATE theaters SET on_hold = NOT on_hold WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return p.GetById(ctx, id)
}

func (p *PostgresTheaterRepository) Delete(ctx context.Context, id int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM shows WHERE theater_id = $1`, id)
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM theaters WHERE id = $1`, id)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}

func (p *PostgresTheaterRepository) AddScreen(ctx context.Context, theaterID int, screen domain.Screen) error {
	return insertScreen(ctx, p.db, theaterID, screen)
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func insertScreen(ctx context.Context, db execer, theaterID int, screen domain.Screen) error {
	query := `
		INSERT INTO screens (theater_id, name, now_playing, price, status)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := db.Exec(ctx, query, theaterID, screen.Name, screen.NowPlaying, screen.Price, screen.Status)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrScreenNameTaken
		case isForeignKeyViolation(err):
			return domain.ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func (p *PostgresTheaterRepository) RemoveScreen(ctx context.Context, theaterID int, screenName string) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM screens WHERE theater_id = $1 AND name = $2`, theaterID, screenName)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		_, err = tx.Exec(ctx, `DELETE FROM shows WHERE theater_id = $1 AND screen_name = $2`, theaterID, screenName)

		return err
	})
}

func (p *PostgresTheaterRepository) SetNowPlaying(ctx context.Context, theaterID int, screenName, movieTitle string) error {
	query := `UPDATE screens SET now_playing = $3 WHERE theater_id = $1 AND name = $2`

	tag, err := p.db.Exec(ctx, query, theaterID, screenName, movieTitle)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
