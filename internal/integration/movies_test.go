package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// a minimal JFIF header is enough for content sniffing
var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, 0x00}

type MovieTestSuite struct {
	BaseSuite
	adminID int
	userID  int
}

func TestMovieSuite(t *testing.T) {
	suite.Run(t, new(MovieTestSuite))
}

func (s *MovieTestSuite) SetupTest() {
	truncateAll(s.T(), s.app.DB)

	s.userID = insertUser(s.T(), s.app.DB, TestUserName, TestUserEmail, TestUserPassword, false)
	s.adminID = insertUser(s.T(), s.app.DB, TestAdminName, TestAdminEmail, TestUserPassword, true)
}

func (s *MovieTestSuite) TestGetMovies() {
	insertMovie(s.T(), s.app.DB, "Alpha Strike", false)
	insertMovie(s.T(), s.app.DB, "Beta Test", false)
	insertMovie(s.T(), s.app.DB, "Alpha Returns", true)

	scenarios := []Scenario{
		{
			Name:           "lists every movie",
			Method:         http.MethodGet,
			URL:            "/api/movies",
			ExpectedStatus: http.StatusOK,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var resp api.MovieListResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
				assert.Len(t, resp.Movies, 3)
			},
		},
		{
			Name:           "filters by title term",
			Method:         http.MethodGet,
			URL:            "/api/movies?term=alpha&sort=title",
			ExpectedStatus: http.StatusOK,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var resp api.MovieListResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))

				titles := make([]string, len(resp.Movies))
				for i, m := range resp.Movies {
					titles[i] = m.Title
				}
				assert.Equal(t, []string{"Alpha Returns", "Alpha Strike"}, titles)
			},
		},
		{
			Name:           "rejects an unknown sort",
			Method:         http.MethodGet,
			URL:            "/api/movies?sort=rating",
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *MovieTestSuite) TestGetMovie() {
	id := insertMovie(s.T(), s.app.DB, TestMovieTitle, false)

	scenarios := []Scenario{
		{
			Name:           "returns the movie",
			Method:         http.MethodGet,
			URL:            fmt.Sprintf("/api/movies/%d", id),
			ExpectedStatus: http.StatusOK,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var resp api.MovieResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))

				assert.Equal(t, id, resp.Id)
				assert.Equal(t, TestMovieTitle, resp.Title)
				assert.Equal(t, TestMoviePoster, resp.PosterUrl)
				assert.Equal(t, "250", resp.Price.String())
			},
		},
		{
			Name:           "returns 404 for a missing movie",
			Method:         http.MethodGet,
			URL:            "/api/movies/9999",
			ExpectedStatus: http.StatusNotFound,
			ExpectedResponse: `{
				"message": "Movie not found"
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *MovieTestSuite) TestCreateMovie() {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(s.T(), mw.WriteField("title", "Uploaded"))
	require.NoError(s.T(), mw.WriteField("synopsis", "With a poster"))
	require.NoError(s.T(), mw.WriteField("price", "320"))
	part, err := mw.CreateFormFile("poster", "poster.jpg")
	require.NoError(s.T(), err)
	_, err = part.Write(jpegBytes)
	require.NoError(s.T(), err)
	require.NoError(s.T(), mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/movies", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for k, v := range s.bearer(s.adminID) {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.app.App.Routes().ServeHTTP(rec, req)

	require.Equal(s.T(), http.StatusCreated, rec.Code)

	var resp api.MovieResponse
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(s.T(), "Uploaded", resp.Title)
	assert.Equal(s.T(), "320", resp.Price.String())

	// the stored poster is served back
	rec = httptest.NewRecorder()
	s.app.App.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+resp.PosterUrl, nil))
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), jpegBytes, rec.Body.Bytes())
}

func (s *MovieTestSuite) TestCreateMovieRequiresAdmin() {
	scenario := Scenario{
		Name:           "regular user is forbidden",
		Method:         http.MethodPost,
		URL:            "/api/movies",
		Headers:        s.bearer(s.userID),
		ExpectedStatus: http.StatusForbidden,
		ExpectedResponse: `{
			"message": "Admin access required"
		}`,
	}

	scenario.Run(s.T(), s.app)
}

func (s *MovieTestSuite) TestToggleMovieHold() {
	id := insertMovie(s.T(), s.app.DB, TestMovieTitle, false)

	scenario := Scenario{
		Name:           "puts the movie on hold",
		Method:         http.MethodPut,
		URL:            fmt.Sprintf("/api/movies/%d/hold", id),
		Headers:        s.bearer(s.adminID),
		ExpectedStatus: http.StatusOK,
		AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
			count := countRows(t, app.DB, "SELECT COUNT(*) FROM movies WHERE id = $1 AND on_hold", id)
			assert.Equal(t, 1, count)
		},
	}

	scenario.Run(s.T(), s.app)
}

func (s *MovieTestSuite) TestDeleteMovie() {
	blocked := insertMovie(s.T(), s.app.DB, TestMovieTitle, false)
	free := insertMovie(s.T(), s.app.DB, "Nobody Watches", false)
	insertTheater(s.T(), s.app.DB, TestTheaterName, false, TestScreenName)
	insertBooking(s.T(), s.app.DB, s.userID, TestTheaterName, TestMovieTitle, TestScreenName, TestShowDate, TestShowTime, "A1")
	insertBooking(s.T(), s.app.DB, s.userID, TestTheaterName, TestMovieTitle, TestScreenName, TestShowDate, TestShowTime, "A2")

	scenarios := []Scenario{
		{
			Name:           "bookings block deletion",
			Method:         http.MethodDelete,
			URL:            fmt.Sprintf("/api/movies/%d", blocked),
			Headers:        s.bearer(s.adminID),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "Cannot delete movie with existing bookings. Refunds would be required.",
				"bookingsCount": 2
			}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, 1, countRows(t, app.DB, "SELECT COUNT(*) FROM movies WHERE id = $1", blocked))
			},
		},
		{
			Name:           "deletes a movie without bookings",
			Method:         http.MethodDelete,
			URL:            fmt.Sprintf("/api/movies/%d", free),
			Headers:        s.bearer(s.adminID),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"message": "Movie deleted successfully"
			}`,
		},
		{
			Name:           "missing movie",
			Method:         http.MethodDelete,
			URL:            "/api/movies/9999",
			Headers:        s.bearer(s.adminID),
			ExpectedStatus: http.StatusNotFound,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
