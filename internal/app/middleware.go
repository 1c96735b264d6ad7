package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authenticate enforces the security requirement the router attached to the
// matched operation. Operations without one pass through.
func (app *Application) authenticate(next http.Handler) http.Handler {
	user := app.requireAuthentication(next)
	admin := app.requireAdmin(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Context().Value(api.AdminAuthScopes) != nil:
			admin.ServeHTTP(w, r)
		case r.Context().Value(api.BearerAuthScopes) != nil:
			user.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		token := bearerToken(r)
		if token == "" {
			app.unauthorizedAccessResponse(w, r, ErrUnauthorized)
			return
		}

		userId, err := app.tokens.Parse(token)
		if err != nil {
			app.contextGetLogger(r).Warn("rejected bearer token", "error", err)
			app.unauthorizedAccessResponse(w, r, ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, app.contextSetUserId(r, userId))
	})
}

// requireAdmin authenticates the caller and checks the admin flag against
// the stored user, so revoking admin rights takes effect immediately.
func (app *Application) requireAdmin(next http.Handler) http.Handler {
	checkAdmin := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := app.userRepo.GetById(r.Context(), app.contextGetUserId(r))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.unauthorizedAccessResponse(w, r, "User not found")
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		if !user.IsAdmin {
			app.forbiddenResponse(w, r, ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})

	return app.requireAuthentication(checkAdmin)
}
