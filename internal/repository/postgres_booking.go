package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (user_id, theater, movie, screen, show_date, show_time, seats)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			booking.UserID,
			booking.Theater,
			booking.Movie,
			booking.Screen,
			booking.Date,
			booking.Time,
			booking.Seats).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(booking.Seats))
		for _, seat := range booking.Seats {
			rows = append(rows, []any{
				booking.ID,
				booking.Theater,
				booking.Movie,
				booking.Screen,
				booking.Date,
				booking.Time,
				seat,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "theater", "movie", "screen", "show_date", "show_time", "seat"},
			pgx.CopyFromRows(rows),
		)

		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatAlreadyReserved
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetBookedSeats(ctx context.Context, slot domain.ShowSlot) ([]string, error) {
	query := `
		SELECT seat.name
		FROM bookings b
		CROSS JOIN LATERAL unnest(b.seats) WITH ORDINALITY AS seat(name, pos)
		WHERE b.theater = $1 AND b.movie = $2 AND b.screen = $3 AND b.show_date = $4 AND b.show_time = $5
		ORDER BY b.id, seat.pos
	`

	rows, err := p.db.Query(ctx, query, slot.Theater, slot.Movie, slot.Screen, slot.Date, slot.Time)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (p *PostgresBookingRepository) GetUserSeats(ctx context.Context, userID int, slot domain.ShowSlot) ([]string, error) {
	query := `
		SELECT seat.name
		FROM bookings b
		CROSS JOIN LATERAL unnest(b.seats) WITH ORDINALITY AS seat(name, pos)
		WHERE b.user_id = $1
			AND b.theater = $2 AND b.movie = $3 AND b.screen = $4 AND b.show_date = $5 AND b.show_time = $6
		ORDER BY b.id, seat.pos
	`

	rows, err := p.db.Query(ctx, query, userID, slot.Theater, slot.Movie, slot.Screen, slot.Date, slot.Time)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (p *PostgresBookingRepository) CountByMovie(ctx context.Context, title string) (int, error) {
	var count int
	err := p.db.QueryRow(ctx, `SELECT count(*) FROM bookings WHERE movie = $1`, title).Scan(&count)

	return count, err
}

func (p *PostgresBookingRepository) CountByTheater(ctx context.Context, name string) (int, error) {
	var count int
	err := p.db.QueryRow(ctx, `SELECT count(*) FROM bookings WHERE theater = $1`, name).Scan(&count)

	return count, err
}

// ListUpcomingByUser returns bookings whose show starts after now, soonest first.
func (p *PostgresBookingRepository) ListUpcomingByUser(ctx context.Context, userID int, now time.Time) ([]domain.Booking, error) {
	query := `
		SELECT id, user_id, theater, movie, screen, show_date, show_time, seats, created_at
		FROM bookings
		WHERE user_id = $1
			AND (show_date > $2::date OR (show_date = $2::date AND show_time > $3))
		ORDER BY show_date ASC, show_time ASC
	`

	return p.list(ctx, query, userID, now)
}

// ListPastByUser returns bookings whose show started at or before now, most
// recent first.
func (p *PostgresBookingRepository) ListPastByUser(ctx context.Context, userID int, now time.Time) ([]domain.Booking, error) {
	query := `
		SELECT id, user_id, theater, movie, screen, show_date, show_time, seats, created_at
		FROM bookings
		WHERE user_id = $1
			AND (show_date < $2::date OR (show_date = $2::date AND show_time <= $3))
		ORDER BY show_date DESC, show_time DESC
	`

	return p.list(ctx, query, userID, now)
}

func (p *PostgresBookingRepository) list(ctx context.Context, query string, userID int, now time.Time) ([]domain.Booking, error) {
	rows, err := p.db.Query(ctx, query, userID, now.Format(domain.DateLayout), now.Format(domain.TimeLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.Theater,
			&booking.Movie,
			&booking.Screen,
			&booking.Date,
			&booking.Time,
			&booking.Seats,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
