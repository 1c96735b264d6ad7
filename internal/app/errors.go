package app

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking-system/api"
	appvalidator "github.com/metinatakli/cinema-booking-system/internal/validator"
)

const (
	ErrInternalServer     = "The server encountered a problem and could not process your request"
	ErrNotFound           = "The requested resource not found"
	ErrInvalidCredentials = "Invalid email or password"
	ErrUnauthorized       = "No token, authorization denied"
	ErrInvalidToken       = "Token is not valid"
	ErrAdminRequired      = "Admin access required"
	ErrEditConflict       = "Unable to update the record due to an edit conflict, please try again"
	ErrValidationFailed   = "One or more fields have invalid values"
	ErrRateLimitExceeded  = "Rate limit exceeded"
)

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).Error(err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	app.sendError(w, r, status, resp)
}

func (app *Application) sendError(w http.ResponseWriter, r *http.Request, status int, resp any) {
	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) resourceNotFoundResponse(w http.ResponseWriter, r *http.Request, resource string) {
	app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("%s not found", resource))
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

var integerParams = []string{"id", "movieId", "theaterId", "page", "pageSize"}

// paramErrorResponse answers path and query parameters the router could not
// bind.
func (app *Application) paramErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		required *api.RequiredParamError
		invalid  *api.InvalidParamFormatError
	)

	switch {
	case errors.As(err, &required):
		app.errorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("%s is required", required.ParamName))
	case errors.As(err, &invalid) && slices.Contains(integerParams, invalid.ParamName):
		app.errorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("%s must be an integer", invalid.ParamName))
	case errors.As(err, &invalid):
		app.errorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("invalid %s", invalid.ParamName))
	default:
		app.badRequestResponse(w, r, err)
	}
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusForbidden, message)
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, message)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusBadRequest, ErrInvalidCredentials)
}

func (app *Application) editConflictResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusConflict, ErrEditConflict)
}

func (app *Application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, ErrRateLimitExceeded)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrValidationFailed,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, len(validationErrs)),
	}

	for i, fieldErr := range validationErrs {
		resp.ValidationErrors[i] = api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		}
	}

	app.sendError(w, r, http.StatusUnprocessableEntity, resp)
}

func (app *Application) seatConflictResponse(w http.ResponseWriter, r *http.Request, seats []string) {
	if seats == nil {
		seats = []string{}
	}

	resp := api.SeatConflictResponse{
		Message:   "Some seats already booked",
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
		Seats:     seats,
	}

	app.sendError(w, r, http.StatusConflict, resp)
}

func (app *Application) blockingBookingsResponse(w http.ResponseWriter, r *http.Request, resource string, count int) {
	resp := api.BlockingBookingsResponse{
		Message:       fmt.Sprintf("Cannot delete %s with existing bookings. Refunds would be required.", resource),
		RequestId:     middleware.GetReqID(r.Context()),
		Timestamp:     time.Now(),
		BookingsCount: count,
	}

	app.sendError(w, r, http.StatusBadRequest, resp)
}

func (app *Application) showBatchFailedResponse(w http.ResponseWriter, r *http.Request, reasons []string) {
	resp := api.ShowBatchErrorResponse{
		Message:   "No shows were created",
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
		Errors:    reasons,
	}

	app.sendError(w, r, http.StatusBadRequest, resp)
}
