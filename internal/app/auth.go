package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/mailer"
)

func (app *Application) Signup(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.SignupRequest

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

	user := domain.User{
		Name:  strings.TrimSpace(input.Name),
		Email: strings.ToLower(input.Email),
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			logger.Warn("signup attempt for existing email")
			app.errorResponse(w, r, http.StatusBadRequest, "User already exists")
		default:
			logger.Error("failed to create user", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.background(logger, "welcome mail", func() {
		err := app.mailer.Send(user.Email, mailer.WelcomeTemplate, mailer.Welcome{Name: user.Name})
		if err != nil {
			logger.Error("failed to send welcome email", "error", err)
		} else {
			logger.Info("welcome email sent successfully")
		}
	})

	resp := api.UserEnvelope{
		Message: "User created successfully",
		User:    toUserResponse(&user),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	user, err := app.userRepo.GetByEmail(r.Context(), strings.ToLower(input.Email))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("login attempt for non-existent user")
			app.invalidCredentialsResponse(w, r)
		default:
			logger.Error("failed to get user by email during login", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !match {
		logger.Warn("login failed due to incorrect password")
		app.invalidCredentialsResponse(w, r)
		return
	}

	token, expiry, err := app.tokens.Issue(user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.LoginResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresAt: expiry,
		User:      toUserResponse(user),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateName(w http.ResponseWriter, r *http.Request) {
	var input api.UpdateNameRequest

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

	user, ok := app.currentUser(w, r)
	if !ok {
		return
	}

	user.Name = strings.TrimSpace(input.Name)

	err = app.userRepo.Update(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.UserEnvelope{
		Message: "Name updated successfully",
		User:    toUserResponse(user),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.ChangePasswordRequest

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

	user, ok := app.currentUser(w, r)
	if !ok {
		return
	}

	match, err := user.Password.Matches(input.CurrentPassword)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !match {
		logger.Warn("password change with incorrect current password")
		app.errorResponse(w, r, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	err = user.Password.Set(input.NewPassword)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Update(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Password changed successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	err := app.userRepo.Delete(r.Context(), app.contextGetUserId(r))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "User")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("account deleted")

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Account deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	user, ok := app.currentUser(w, r)
	if !ok {
		return
	}

	resp := api.CheckAdminResponse{
		IsAdmin: user.IsAdmin,
		User:    toUserResponse(user),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// currentUser loads the authenticated caller. It writes the error response
// itself and reports false when the handler should stop.
func (app *Application) currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, err := app.userRepo.GetById(r.Context(), app.contextGetUserId(r))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.resourceNotFoundResponse(w, r, "User")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return user, true
}

func toUserResponse(user *domain.User) api.UserResponse {
	return api.UserResponse{
		Id:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
