package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

func (app *Application) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheaterListResponse{
		Theaters: make([]api.TheaterResponse, len(theaters)),
	}

	for i, theater := range theaters {
		resp.Theaters[i] = toTheaterResponse(theater)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheater(w http.ResponseWriter, r *http.Request, id int) {
	theater, err := app.theaterRepo.GetById(r.Context(), id)
	if err != nil {
		app.theaterErrorResponse(w, r, err)
		return
	}

	app.writeTheater(w, r, theater)
}

func (app *Application) CreateTheater(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	err := parseForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form, err := readTheaterForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	photoUrl, ok := app.uploadImage(w, r, "photo")
	if !ok {
		return
	}

	theater := &domain.Theater{
		Name:     form.Name,
		Address:  form.Address,
		PhotoUrl: photoUrl,
		Price:    domain.DefaultPrice,
		Status:   domain.StatusActive,
		Screens:  []domain.Screen{},
	}

	if photoUrl == "" {
		theater.PhotoUrl = domain.FallbackTheaterPhoto
	}

	if form.Price != nil && form.Price.IsPositive() {
		theater.Price = *form.Price
	}

	err = app.theaterRepo.Create(r.Context(), theater)
	if err != nil {
		app.removeImage(r, photoUrl)
		logger.Error("failed to create theater", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("theater created", "theater_id", theater.ID)

	err = app.writeJSON(w, http.StatusCreated, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateTheater(w http.ResponseWriter, r *http.Request, id int) {
	err := parseForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), id)
	if err != nil {
		app.theaterErrorResponse(w, r, err)
		return
	}

	form, err := readTheaterForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if form.Name == "" {
		form.Name = theater.Name
	}
	if form.Address == "" {
		form.Address = theater.Address
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	photoUrl, ok := app.uploadImage(w, r, "photo")
	if !ok {
		return
	}

	oldPhoto := theater.PhotoUrl

	theater.Name = form.Name
	theater.Address = form.Address
	if form.Price != nil && form.Price.IsPositive() {
		theater.Price = *form.Price
	}
	if photoUrl != "" {
		theater.PhotoUrl = photoUrl
	}

	err = app.theaterRepo.Update(r.Context(), theater)
	if err != nil {
		app.removeImage(r, photoUrl)
		app.theaterErrorResponse(w, r, err)
		return
	}

	if photoUrl != "" {
		app.removeImage(r, oldPhoto)
	}

	app.writeTheater(w, r, theater)
}

func (app *Application) ToggleTheaterHold(w http.ResponseWriter, r *http.Request, id int) {
	theater, err := app.theaterRepo.ToggleHold(r.Context(), id)
	if err != nil {
		app.theaterErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("theater hold toggled", "theater_id", theater.ID, "on_hold", theater.OnHold)

	app.writeTheater(w, r, theater)
}

func (app *Application) DeleteTheater(w http.ResponseWriter, r *http.Request, id int) {
	theater, err := app.guard.DeleteTheater(r.Context(), id)
	if err != nil {
		app.theaterErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("theater deleted", "theater_id", theater.ID)
	app.removeImage(r, theater.PhotoUrl)

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Theater deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AddScreen(w http.ResponseWriter, r *http.Request, id int) {
	var input api.AddScreenRequest

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

	theater, err := app.guard.AddScreen(r.Context(), id, strings.TrimSpace(input.ScreenName))
	if err != nil {
		app.theaterErrorResponse(w, r, err)
		return
	}

	app.writeTheater(w, r, theater)
}

func (app *Application) RemoveScreen(w http.ResponseWriter, r *http.Request, id int, name string) {
	theater, err := app.guard.RemoveScreen(r.Context(), id, name)
	if err != nil {
		if errors.Is(err, domain.ErrScreenNotFound) {
			app.resourceNotFoundResponse(w, r, "Screen")
			return
		}

		app.theaterErrorResponse(w, r, err)
		return
	}

	app.writeTheater(w, r, theater)
}

func (app *Application) AssignMovie(w http.ResponseWriter, r *http.Request, id int, name string) {
	var input api.AssignMovieRequest

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

	theater, err := app.guard.AssignMovie(r.Context(), id, name, strings.TrimSpace(input.MovieTitle))
	if err != nil {
		app.theaterErrorResponse(w, r, err)
		return
	}

	app.writeTheater(w, r, theater)
}

func (app *Application) FreeScreen(w http.ResponseWriter, r *http.Request, id int, name string) {
	_, err := app.guard.FreeScreen(r.Context(), id, name)
	if err != nil {
		app.theaterErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Movie removed from screen."}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) writeTheater(w http.ResponseWriter, r *http.Request, theater *domain.Theater) {
	err := app.writeJSON(w, http.StatusOK, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) theaterErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		blocking *domain.BlockingBookingsError
		invalid  *domain.InvalidInputError
	)

	switch {
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrTheaterNotFound):
		app.resourceNotFoundResponse(w, r, "Theater")
	case errors.Is(err, domain.ErrScreenNotFound):
		app.resourceNotFoundResponse(w, r, "Screen")
	case errors.Is(err, domain.ErrScreenNameTaken):
		app.errorResponse(w, r, http.StatusBadRequest, "Screen name already exists in this theater")
	case errors.As(err, &blocking):
		app.blockingBookingsResponse(w, r, blocking.Resource, blocking.Count)
	case errors.As(err, &invalid):
		app.errorResponse(w, r, http.StatusBadRequest, invalid.Reason)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func readTheaterForm(r *http.Request) (api.TheaterForm, error) {
	price, err := formPrice(r)
	if err != nil {
		return api.TheaterForm{}, err
	}

	return api.TheaterForm{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Address: strings.TrimSpace(r.FormValue("address")),
		Price:   price,
	}, nil
}

func toTheaterResponse(theater *domain.Theater) api.TheaterResponse {
	return api.TheaterResponse{
		Id:        theater.ID,
		Name:      theater.Name,
		Address:   theater.Address,
		PhotoUrl:  theater.PhotoUrl,
		Price:     theater.Price,
		OnHold:    theater.OnHold,
		Status:    string(theater.Status),
		Screens:   toScreenResponses(theater.Screens),
		CreatedAt: theater.CreatedAt,
	}
}

func toScreenResponses(screens []domain.Screen) []api.ScreenResponse {
	resp := make([]api.ScreenResponse, len(screens))

	for i, s := range screens {
		resp[i] = api.ScreenResponse{
			Name:       s.Name,
			NowPlaying: s.NowPlaying,
			Price:      s.Price,
			Status:     string(s.Status),
		}
	}

	return resp
}
