package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/mocks"
	"github.com/metinatakli/cinema-booking-system/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TheaterHandlersTestSuite struct {
	suite.Suite
	app         *Application
	theaterRepo *mocks.MockTheaterRepo
	showRepo    *mocks.MockShowRepo
	bookingRepo *mocks.MockBookingRepo
}

func TestTheaterHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(TheaterHandlersTestSuite))
}

func (s *TheaterHandlersTestSuite) SetupTest() {
	s.theaterRepo = new(mocks.MockTheaterRepo)
	s.showRepo = new(mocks.MockShowRepo)
	s.bookingRepo = new(mocks.MockBookingRepo)

	s.app = newTestApplication(func(a *Application) {
		a.theaterRepo = s.theaterRepo
		a.showRepo = s.showRepo
		a.bookingRepo = s.bookingRepo
	})
}

func (s *TheaterHandlersTestSuite) TearDownTest() {
	s.theaterRepo.AssertExpectations(s.T())
	s.showRepo.AssertExpectations(s.T())
	s.bookingRepo.AssertExpectations(s.T())
}

func (s *TheaterHandlersTestSuite) newTheater() *domain.Theater {
	return &domain.Theater{
		ID:       1,
		Name:     "Grand Cinema",
		Address:  "1 Main St",
		PhotoUrl: domain.FallbackTheaterPhoto,
		Price:    domain.DefaultPrice,
		Status:   domain.StatusActive,
		Screens: []domain.Screen{
			domain.NewScreen("Screen 1"),
			domain.NewScreen("Screen 2"),
		},
	}
}

func (s *TheaterHandlersTestSuite) decodeTheater(body []byte) api.TheaterResponse {
	var resp api.TheaterResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	return resp
}

func (s *TheaterHandlersTestSuite) TestGetTheaters() {
	s.theaterRepo.On("GetAll", mock.Anything).Return([]*domain.Theater{s.newTheater()}, nil)

	w, r := executeRequest(s.T(), http.MethodGet, "/api/theaters", nil)

	s.app.GetTheaters(w, r)

	s.Equal(http.StatusOK, w.Code)

	var resp api.TheaterListResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Require().Len(resp.Theaters, 1)
	s.Len(resp.Theaters[0].Screens, 2)
}

func (s *TheaterHandlersTestSuite) TestCreateTheater() {
	s.theaterRepo.On("Create", mock.Anything, mock.MatchedBy(func(t *domain.Theater) bool {
		return t.Name == "Grand Cinema" && t.PhotoUrl == domain.FallbackTheaterPhoto && len(t.Screens) == 0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Theater).ID = 5
	}).Return(nil)

	w, r := executeFormRequest(s.T(), http.MethodPost, "/api/theaters",
		map[string]string{"name": "Grand Cinema", "address": "1 Main St"}, "", nil)

	s.app.CreateTheater(w, r)

	s.Require().Equal(http.StatusCreated, w.Code)

	resp := s.decodeTheater(w.Body.Bytes())
	s.Equal(5, resp.Id)
	s.Equal(domain.DefaultPrice.String(), resp.Price.String())
}

func (s *TheaterHandlersTestSuite) TestCreateTheaterMissingAddress() {
	w, r := executeFormRequest(s.T(), http.MethodPost, "/api/theaters",
		map[string]string{"name": "Grand Cinema"}, "", nil)

	s.app.CreateTheater(w, r)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	checkErrorResponse(s.T(), w, struct {
		wantStatus     int
		wantErrMessage string
	}{http.StatusUnprocessableEntity, validator.ErrRequired})
}

func (s *TheaterHandlersTestSuite) TestAddScreen() {
	tests := []struct {
		name           string
		input          api.AddScreenRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:  "new screen",
			input: api.AddScreenRequest{ScreenName: "Screen 3"},
			setupMocks: func() {
				s.theaterRepo.On("GetById", mock.Anything, 1).Return(s.newTheater(), nil)
				s.theaterRepo.On("AddScreen", mock.Anything, 1, domain.NewScreen("Screen 3")).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "duplicate name",
			input: api.AddScreenRequest{ScreenName: "Screen 1"},
			setupMocks: func() {
				s.theaterRepo.On("GetById", mock.Anything, 1).Return(s.newTheater(), nil)
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "Screen name already exists in this theater",
		},
		{
			name:           "blank name",
			input:          api.AddScreenRequest{ScreenName: "  "},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "screen name is required",
		},
		{
			name:  "unknown theater",
			input: api.AddScreenRequest{ScreenName: "Screen 3"},
			setupMocks: func() {
				s.theaterRepo.On("GetById", mock.Anything, 1).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "Theater not found",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/api/theaters/1/screens", tt.input)
			s.app.AddScreen(w, r, 1)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				resp := s.decodeTheater(w.Body.Bytes())
				s.Len(resp.Screens, 3)
				s.Equal("", resp.Screens[2].NowPlaying)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})
		})
	}
}

func (s *TheaterHandlersTestSuite) TestRemoveScreen() {
	s.theaterRepo.On("GetById", mock.Anything, 1).Return(s.newTheater(), nil)
	s.theaterRepo.On("RemoveScreen", mock.Anything, 1, "Screen 2").Return(nil)

	w, r := executeRequest(s.T(), http.MethodDelete, "/api/theaters/1/screens/Screen%202", nil)
	s.app.RemoveScreen(w, r, 1, "Screen 2")

	s.Require().Equal(http.StatusOK, w.Code)

	resp := s.decodeTheater(w.Body.Bytes())
	s.Require().Len(resp.Screens, 1)
	s.Equal("Screen 1", resp.Screens[0].Name)
}

func (s *TheaterHandlersTestSuite) TestRemoveMissingScreen() {
	s.theaterRepo.On("GetById", mock.Anything, 1).Return(s.newTheater(), nil)

	w, r := executeRequest(s.T(), http.MethodDelete, "/api/theaters/1/screens/IMAX", nil)
	s.app.RemoveScreen(w, r, 1, "IMAX")

	s.Equal(http.StatusNotFound, w.Code)
	checkErrorResponse(s.T(), w, struct {
		wantStatus     int
		wantErrMessage string
	}{http.StatusNotFound, "Screen not found"})
}

func (s *TheaterHandlersTestSuite) TestAssignMovie() {
	s.theaterRepo.On("GetById", mock.Anything, 1).Return(s.newTheater(), nil)
	s.theaterRepo.On("SetNowPlaying", mock.Anything, 1, "Screen 1", "Inception").Return(nil)

	w, r := executeRequest(s.T(), http.MethodPut, "/api/theaters/1/screens/Screen%201/assign",
		api.AssignMovieRequest{MovieTitle: " Inception "})
	s.app.AssignMovie(w, r, 1, "Screen 1")

	s.Require().Equal(http.StatusOK, w.Code)

	resp := s.decodeTheater(w.Body.Bytes())
	s.Equal("Inception", resp.Screens[0].NowPlaying)
	s.Equal("", resp.Screens[1].NowPlaying)
}

func (s *TheaterHandlersTestSuite) TestAssignMovieBlankTitle() {
	w, r := executeRequest(s.T(), http.MethodPut, "/api/theaters/1/screens/Screen%201/assign",
		api.AssignMovieRequest{MovieTitle: ""})
	s.app.AssignMovie(w, r, 1, "Screen 1")

	s.Equal(http.StatusBadRequest, w.Code)
	checkErrorResponse(s.T(), w, struct {
		wantStatus     int
		wantErrMessage string
	}{http.StatusBadRequest, "movie title is required"})
}

func (s *TheaterHandlersTestSuite) TestFreeScreen() {
	theater := s.newTheater()
	theater.Screens[0].NowPlaying = "Inception"

	s.theaterRepo.On("GetById", mock.Anything, 1).Return(theater, nil)
	s.theaterRepo.On("SetNowPlaying", mock.Anything, 1, "Screen 1", "").Return(nil)

	w, r := executeRequest(s.T(), http.MethodPut, "/api/theaters/1/screens/Screen%201/remove-movie", nil)
	s.app.FreeScreen(w, r, 1, "Screen 1")

	s.Require().Equal(http.StatusOK, w.Code)

	var resp api.MessageResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("Movie removed from screen.", resp.Message)
}

func (s *TheaterHandlersTestSuite) TestDeleteTheater() {
	tests := []struct {
		name       string
		bookings   int
		wantStatus int
	}{
		{name: "no bookings", bookings: 0, wantStatus: http.StatusOK},
		{name: "blocked by bookings", bookings: 3, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			s.theaterRepo.On("GetById", mock.Anything, 1).Return(s.newTheater(), nil)
			s.bookingRepo.On("CountByTheater", mock.Anything, "Grand Cinema").Return(tt.bookings, nil)
			if tt.bookings == 0 {
				s.theaterRepo.On("Delete", mock.Anything, 1).Return(nil)
			}

			w, r := executeRequest(s.T(), http.MethodDelete, "/api/theaters/1", nil)
			s.app.DeleteTheater(w, r, 1)

			s.Equal(tt.wantStatus, w.Code)

			if tt.bookings > 0 {
				var resp api.BlockingBookingsResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
				s.Equal(tt.bookings, resp.BookingsCount)
				s.Equal("Cannot delete theater with existing bookings. Refunds would be required.", resp.Message)
			}
		})
	}
}

func TestToggleTheaterHold(t *testing.T) {
	theaterRepo := new(mocks.MockTheaterRepo)
	theaterRepo.On("ToggleHold", mock.Anything, 2).Return(&domain.Theater{ID: 2, OnHold: true, Screens: []domain.Screen{}}, nil)

	app := newTestApplication(func(a *Application) {
		a.theaterRepo = theaterRepo
	})

	w, r := executeRequest(t, http.MethodPut, "/api/theaters/2/hold", nil)
	app.ToggleTheaterHold(w, r, 2)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TheaterResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.OnHold)
	theaterRepo.AssertExpectations(t)
}
