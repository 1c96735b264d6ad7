package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"updatedAt": {},
	"expiresAt": {},
	"token":     {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch v := m[k].(type) {
		case map[string]any:
			cleanMap(v)
		case []any:
			for _, item := range v {
				if nested, ok := item.(map[string]any); ok {
					cleanMap(nested)
				}
			}
		}
	}
}

func jsonBody(t testing.TB, v any) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(b)
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(),
		"TRUNCATE booking_seats, bookings, shows, screens, theaters, movies, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func insertUser(t testing.TB, db *pgxpool.Pool, name, email, password string, isAdmin bool) int {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	var id int
	err = db.QueryRow(context.Background(), `
		INSERT INTO users (name, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		name, strings.ToLower(email), hash, isAdmin).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertMovie(t testing.TB, db *pgxpool.Pool, title string, onHold bool) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO movies (title, synopsis, poster_url, price, on_hold)
		VALUES ($1, $2, $3, 250, $4)
		RETURNING id`,
		title, TestMovieSynopsis, TestMoviePoster, onHold).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTheater(t testing.TB, db *pgxpool.Pool, name string, onHold bool, screens ...string) int {
	ctx := context.Background()

	var id int
	err := db.QueryRow(ctx, `
		INSERT INTO theaters (name, address, photo_url, price, on_hold)
		VALUES ($1, $2, $3, 200, $4)
		RETURNING id`,
		name, TestTheaterAddress, TestTheaterPhoto, onHold).Scan(&id)
	require.NoError(t, err)

	for _, screen := range screens {
		_, err = db.Exec(ctx, `INSERT INTO screens (theater_id, name) VALUES ($1, $2)`, id, screen)
		require.NoError(t, err)
	}

	return id
}

func insertShow(t testing.TB, db *pgxpool.Pool, movieID, theaterID int, screen, date, showTime string) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO shows (movie_id, theater_id, screen_name, show_date, show_time, price)
		VALUES ($1, $2, $3, $4, $5, 300)
		RETURNING id`,
		movieID, theaterID, screen, date, showTime).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertBooking(t testing.TB, db *pgxpool.Pool, userID int, theater, movie, screen, date, showTime string, seats ...string) int {
	ctx := context.Background()

	var id int
	err := db.QueryRow(ctx, `
		INSERT INTO bookings (user_id, theater, movie, screen, show_date, show_time, seats)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		userID, theater, movie, screen, date, showTime, seats).Scan(&id)
	require.NoError(t, err)

	for _, seat := range seats {
		_, err = db.Exec(ctx, `
			INSERT INTO booking_seats (booking_id, theater, movie, screen, show_date, show_time, seat)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, theater, movie, screen, date, showTime, seat)
		require.NoError(t, err)
	}

	return id
}

func countRows(t testing.TB, db *pgxpool.Pool, query string, args ...any) int {
	var count int
	err := db.QueryRow(context.Background(), query, args...).Scan(&count)
	require.NoError(t, err)

	return count
}
