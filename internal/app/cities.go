package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
)

func (app *Application) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := app.cityRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CityListResponse{
		Cities: make([]api.CityResponse, len(cities)),
	}

	for i, c := range cities {
		resp.Cities[i] = api.CityResponse{Id: c.ID, Name: c.Name, State: c.State}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
