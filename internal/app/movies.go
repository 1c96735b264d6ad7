package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/storage"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	DefaultSort     = "id"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	params.Term = trimmedOrNil(params.Term)
	params.Sort = trimmedOrNil(params.Sort)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), toMovieFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieResponses(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request, id int) {
	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		app.movieErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	err := parseForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form, err := readMovieForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	posterUrl, ok := app.uploadImage(w, r, "poster")
	if !ok {
		return
	}

	movie := &domain.Movie{
		Title:     form.Title,
		Synopsis:  form.Synopsis,
		PosterUrl: posterUrl,
		Price:     domain.DefaultPrice,
		Status:    domain.StatusActive,
	}

	if posterUrl == "" {
		movie.PosterUrl = domain.FallbackPoster
	}

	if form.Price != nil && form.Price.IsPositive() {
		movie.Price = *form.Price
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.removeImage(r, posterUrl)
		logger.Error("failed to create movie", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("movie created", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateMovie overwrites the fields present in the form. A new poster
// replaces the previous upload.
func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, id int) {
	err := parseForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		app.movieErrorResponse(w, r, err)
		return
	}

	form, err := readMovieForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if form.Title == "" {
		form.Title = movie.Title
	}
	if form.Synopsis == "" {
		form.Synopsis = movie.Synopsis
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	posterUrl, ok := app.uploadImage(w, r, "poster")
	if !ok {
		return
	}

	oldPoster := movie.PosterUrl

	movie.Title = form.Title
	movie.Synopsis = form.Synopsis
	if form.Price != nil && form.Price.IsPositive() {
		movie.Price = *form.Price
	}
	if posterUrl != "" {
		movie.PosterUrl = posterUrl
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		app.removeImage(r, posterUrl)
		app.movieErrorResponse(w, r, err)
		return
	}

	if posterUrl != "" {
		app.removeImage(r, oldPoster)
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ToggleMovieHold(w http.ResponseWriter, r *http.Request, id int) {
	movie, err := app.movieRepo.ToggleHold(r.Context(), id)
	if err != nil {
		app.movieErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("movie hold toggled", "movie_id", movie.ID, "on_hold", movie.OnHold)

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id int) {
	movie, err := app.guard.DeleteMovie(r.Context(), id)
	if err != nil {
		app.movieErrorResponse(w, r, err)
		return
	}

	app.removeImage(r, movie.PosterUrl)

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Movie deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) movieErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var blocking *domain.BlockingBookingsError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrMovieNotFound):
		app.resourceNotFoundResponse(w, r, "Movie")
	case errors.As(err, &blocking):
		app.blockingBookingsResponse(w, r, blocking.Resource, blocking.Count)
	case errors.Is(err, domain.ErrEditConflict):
		app.editConflictResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// uploadImage stores the image sent as the given form file. It writes the
// error response itself and reports false when the handler should stop.
func (app *Application) uploadImage(w http.ResponseWriter, r *http.Request, field string) (string, bool) {
	path, err := app.saveFormImage(r, field)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUnsupportedImage), errors.Is(err, storage.ErrImageTooLarge):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return "", false
	}

	return path, true
}

func readMovieForm(r *http.Request) (api.MovieForm, error) {
	price, err := formPrice(r)
	if err != nil {
		return api.MovieForm{}, err
	}

	return api.MovieForm{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Synopsis: strings.TrimSpace(r.FormValue("synopsis")),
		Price:    price,
	}, nil
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}

	return filters
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	resp := make([]api.MovieResponse, len(movies))

	for i, movie := range movies {
		resp[i] = toMovieResponse(movie)
	}

	return resp
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	if movie == nil {
		return api.MovieResponse{}
	}

	return api.MovieResponse{
		Id:        movie.ID,
		Title:     movie.Title,
		Synopsis:  movie.Synopsis,
		PosterUrl: movie.PosterUrl,
		Price:     movie.Price,
		OnHold:    movie.OnHold,
		Status:    string(movie.Status),
		CreatedAt: movie.CreatedAt,
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
