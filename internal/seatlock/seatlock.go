// Package seatlock holds seats of a show in Redis while a booking is being
// written.
package seatlock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL     = 30 * time.Second
	releaseTimeout = 2 * time.Second
)

var holdSeatsScript = redis.NewScript(`
    -- KEYS = seat hold keys of a single show
    -- ARGV = [owner, ttl]

    local held = {}
    for i=1, #KEYS do
        if redis.call("EXISTS", KEYS[i]) == 1 then
            table.insert(held, i)
        end
    end

    if #held > 0 then
        return held
    end

    for i=1, #KEYS do
        redis.call("SET", KEYS[i], ARGV[1], "EX", ARGV[2])
    end

    return held
`)

var releaseSeatsScript = redis.NewScript(`
    -- KEYS = seat hold keys, ARGV = [owner]

    local released = 0
    for i=1, #KEYS do
        if redis.call("GET", KEYS[i]) == ARGV[1] then
            released = released + redis.call("DEL", KEYS[i])
        end
    end

    return released
`)

type Locker struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func New(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Locker {
	if ttl < time.Second {
		ttl = DefaultTTL
	}

	return &Locker{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Lock holds every seat or none. When some seats are already held it returns
// a *domain.SeatConflictError naming them.
func (l *Locker) Lock(ctx context.Context, slot domain.ShowSlot, seats []string) (func(), error) {
	keys := make([]string, len(seats))
	for i, seat := range seats {
		keys[i] = seatHoldKey(slot, seat)
	}

	owner := uuid.NewString()

	held, err := holdSeatsScript.Run(ctx, l.client, keys, owner, int(l.ttl.Seconds())).Int64Slice()
	if err != nil {
		return nil, err
	}

	if len(held) > 0 {
		conflicts := make([]string, 0, len(held))
		for _, i := range held {
			conflicts = append(conflicts, seats[i-1])
		}

		return nil, &domain.SeatConflictError{Seats: conflicts}
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()

		err := releaseSeatsScript.Run(ctx, l.client, keys, owner).Err()
		if err != nil {
			l.logger.Warn("failed to release seat hold", "error", err, "seats", seats)
		}
	}

	return release, nil
}

// seatHoldKey wraps the show digest in a hash tag so all keys of one show
// land in the same cluster slot.
func seatHoldKey(slot domain.ShowSlot, seat string) string {
	return "seat_hold:{" + showDigest(slot) + "}:" + seat
}

func showDigest(slot domain.ShowSlot) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		slot.Theater,
		slot.Movie,
		slot.Screen,
		slot.Date.Format(domain.DateLayout),
		slot.Time,
	}, "\x00")))

	return hex.EncodeToString(sum[:8])
}
