package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type MockCityRepo struct {
	GetAllFunc func(ctx context.Context) ([]domain.City, error)
}

func (m *MockCityRepo) GetAll(ctx context.Context) ([]domain.City, error) {
	return m.GetAllFunc(ctx)
}
