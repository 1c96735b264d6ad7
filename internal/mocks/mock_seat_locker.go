package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatLocker struct {
	mock.Mock
}

func (m *MockSeatLocker) Lock(ctx context.Context, slot domain.ShowSlot, seats []string) (func(), error) {
	args := m.Called(ctx, slot, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}
