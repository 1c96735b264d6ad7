package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresCityRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCityRepository(db *pgxpool.Pool) *PostgresCityRepository {
	return &PostgresCityRepository{
		db: db,
	}
}

func (p *PostgresCityRepository) GetAll(ctx context.Context) ([]domain.City, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name, state FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.City])
}
