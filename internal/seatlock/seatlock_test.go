package seatlock

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSlot = domain.ShowSlot{
	Theater: "Cine One",
	Movie:   "Inception",
	Screen:  "Screen1",
	Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	Time:    "18:00",
}

func newTestLocker(client *mocks.MockRedisClient) *Locker {
	return New(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLock(t *testing.T) {
	seats := []string{"A1", "A2", "A3"}
	keys := []string{
		seatHoldKey(testSlot, "A1"),
		seatHoldKey(testSlot, "A2"),
		seatHoldKey(testSlot, "A3"),
	}

	t.Run("holds all seats and releases them", func(t *testing.T) {
		client := new(mocks.MockRedisClient)
		client.On("EvalSha", mock.Anything, mock.Anything, keys, mock.Anything, 60).
			Return(redis.NewCmdResult([]interface{}{}, nil)).Once()
		client.On("EvalSha", mock.Anything, mock.Anything, keys, mock.Anything).
			Return(redis.NewCmdResult(int64(3), nil)).Once()

		release, err := newTestLocker(client).Lock(context.Background(), testSlot, seats)
		require.NoError(t, err)

		release()
		client.AssertExpectations(t)
	})

	t.Run("reports seats held by another request", func(t *testing.T) {
		client := new(mocks.MockRedisClient)
		client.On("EvalSha", mock.Anything, mock.Anything, keys, mock.Anything, 60).
			Return(redis.NewCmdResult([]interface{}{int64(1), int64(3)}, nil))

		release, err := newTestLocker(client).Lock(context.Background(), testSlot, seats)

		assert.Nil(t, release)

		var conflict *domain.SeatConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, []string{"A1", "A3"}, conflict.Seats)
	})

	t.Run("propagates redis failures", func(t *testing.T) {
		client := new(mocks.MockRedisClient)
		client.On("EvalSha", mock.Anything, mock.Anything, keys, mock.Anything, 60).
			Return(redis.NewCmdResult(nil, errors.New("connection refused")))

		_, err := newTestLocker(client).Lock(context.Background(), testSlot, seats)

		assert.EqualError(t, err, "connection refused")
	})
}

func TestSeatHoldKey(t *testing.T) {
	other := testSlot
	other.Time = "21:00"

	assert.Equal(t, seatHoldKey(testSlot, "A1"), seatHoldKey(testSlot, "A1"))
	assert.NotEqual(t, seatHoldKey(testSlot, "A1"), seatHoldKey(other, "A1"))
	assert.NotEqual(t, seatHoldKey(testSlot, "A1"), seatHoldKey(testSlot, "A2"))
	assert.Regexp(t, `^seat_hold:\{[0-9a-f]{16}\}:A1$`, seatHoldKey(testSlot, "A1"))
}
