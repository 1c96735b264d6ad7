package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/guard"
	"github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetShows(w http.ResponseWriter, r *http.Request) {
	app.listShows(w, r, domain.ShowFilter{})
}

func (app *Application) GetShowsByMovieAndTheater(w http.ResponseWriter, r *http.Request, movieId int, theaterId int) {
	app.listShows(w, r, domain.ShowFilter{MovieID: movieId, TheaterID: theaterId})
}

func (app *Application) GetShowsByMovie(w http.ResponseWriter, r *http.Request, params api.GetShowsByMovieParams) {
	app.listShows(w, r, domain.ShowFilter{MovieID: params.MovieId})
}

func (app *Application) listShows(w http.ResponseWriter, r *http.Request, filter domain.ShowFilter) {
	shows, err := app.showRepo.List(r.Context(), filter)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.ShowListResponse{Shows: toShowResponses(shows)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CreateShows schedules a show for every date and time of the request.
// Slots already taken are reported in the response without failing the
// rest of the batch.
func (app *Application) CreateShows(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateShowsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if !input.Price.IsPositive() {
		app.errorResponse(w, r, http.StatusBadRequest, "price must be greater than zero")
		return
	}

	adminID := app.contextGetUserId(r)

	batch := guard.ShowBatch{
		MovieID:    input.MovieId,
		TheaterID:  input.TheaterId,
		Screen:     strings.TrimSpace(input.Screen),
		Price:      input.Price,
		Dates:      toDates(input.Dates),
		Times:      input.Times,
		Tags:       input.Tags,
		ModifiedBy: &adminID,
	}

	if input.Status != nil {
		batch.Status = domain.Status(*input.Status)
	}

	result, err := app.guard.CreateShows(r.Context(), batch)
	if err != nil {
		var invalid *domain.InvalidInputError

		switch {
		case errors.Is(err, domain.ErrMovieNotFound), errors.Is(err, domain.ErrTheaterNotFound):
			app.errorResponse(w, r, http.StatusNotFound, "Movie or theater not found")
		case errors.Is(err, domain.ErrScreenNotFound):
			app.resourceNotFoundResponse(w, r, "Screen")
		case errors.As(err, &invalid):
			app.errorResponse(w, r, http.StatusBadRequest, invalid.Reason)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.showsScheduled(r.Context(), batch.TheaterID, len(result.Created), len(result.Skipped))

	if len(result.Created) == 0 {
		app.showBatchFailedResponse(w, r, result.Reasons())
		return
	}

	logger.Info("shows created", "created", len(result.Created), "skipped", len(result.Skipped))

	resp := api.CreateShowsResponse{
		Message: fmt.Sprintf("Created %d shows successfully", len(result.Created)),
		Shows:   toShowResponses(result.Created),
	}

	if len(result.Skipped) > 0 {
		resp.Errors = result.Reasons()
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShow(w http.ResponseWriter, r *http.Request, id int) {
	var input api.UpdateShowRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		app.showErrorResponse(w, r, err)
		return
	}

	if input.Screen != nil {
		screen := strings.TrimSpace(*input.Screen)

		theater, err := app.theaterRepo.GetById(r.Context(), show.TheaterID)
		if err != nil {
			app.theaterErrorResponse(w, r, err)
			return
		}

		if _, ok := theater.Screen(screen); !ok {
			app.resourceNotFoundResponse(w, r, "Screen")
			return
		}

		show.Screen = screen
	}
	if input.Date != nil {
		show.Date = input.Date.Time
	}
	if input.Time != nil {
		show.Time = *input.Time
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			app.errorResponse(w, r, http.StatusBadRequest, "price must be greater than zero")
			return
		}

		show.Price = *input.Price
	}
	if input.Status != nil {
		show.Status = domain.Status(*input.Status)
	}
	if input.Tags != nil {
		show.Tags = input.Tags
	}

	adminID := app.contextGetUserId(r)
	show.ModifiedBy = &adminID

	err = app.showRepo.Update(r.Context(), show)
	if err != nil {
		app.showErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowResponse(*show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShow(w http.ResponseWriter, r *http.Request, id int) {
	err := app.showRepo.Delete(r.Context(), id)
	if err != nil {
		app.showErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Show deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowsByMovieAndTheater(w http.ResponseWriter, r *http.Request, movieId int, theaterId int) {
	deleted, err := app.showRepo.DeleteByMovieAndTheater(r.Context(), movieId, theaterId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("shows deleted", "movie_id", movieId, "theater_id", theaterId, "count", deleted)

	msg := fmt.Sprintf("Deleted %d shows successfully", deleted)

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: msg}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetAvailableScreens lists the screens of a theater with no show at the
// requested date and time.
func (app *Application) GetAvailableScreens(w http.ResponseWriter, r *http.Request, params api.GetAvailableScreensParams) {
	date := trimmedOrNil(params.Date)
	showTime := trimmedOrNil(params.Time)

	if params.TheaterId == nil || date == nil || showTime == nil {
		app.errorResponse(w, r, http.StatusBadRequest, "theaterId, date, and time are required")
		return
	}

	day, err := parseDate(*date)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screens, err := app.guard.AvailableScreens(r.Context(), *params.TheaterId, day, *showTime)
	if err != nil {
		app.theaterErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.AvailableScreensResponse{Screens: toScreenResponses(screens)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) showErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrShowNotFound):
		app.resourceNotFoundResponse(w, r, "Show")
	case errors.Is(err, domain.ErrDuplicateShow):
		app.errorResponse(w, r, http.StatusBadRequest, "Show already exists for this screen, date, and time.")
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toDates(dates []types.Date) []time.Time {
	days := make([]time.Time, len(dates))
	for i, d := range dates {
		days[i] = d.Time
	}

	return days
}

func toShowResponses(shows []domain.Show) []api.ShowResponse {
	resp := make([]api.ShowResponse, len(shows))

	for i, show := range shows {
		resp[i] = toShowResponse(show)
	}

	return resp
}

func toShowResponse(show domain.Show) api.ShowResponse {
	tags := show.Tags
	if tags == nil {
		tags = []string{}
	}

	return api.ShowResponse{
		Id:             show.ID,
		MovieId:        show.MovieID,
		MovieTitle:     show.MovieTitle,
		MoviePosterUrl: show.MoviePosterUrl,
		TheaterId:      show.TheaterID,
		TheaterName:    show.TheaterName,
		TheaterAddress: show.TheaterAddress,
		Screen:         show.Screen,
		Date:           types.Date{Time: show.Date},
		Time:           show.Time,
		Price:          show.Price,
		Status:         string(show.Status),
		Tags:           tags,
		ModifiedBy:     show.ModifiedBy,
		CreatedAt:      show.CreatedAt,
		UpdatedAt:      show.UpdatedAt,
	}
}
