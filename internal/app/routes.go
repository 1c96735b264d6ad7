package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/riandyrn/otelchi"
)

var _ api.ServerInterface = (*Application)(nil)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.TrustedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	if app.config.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.rateLimit)

	if app.images != nil {
		uploads := http.FileServer(http.Dir(app.images.Dir()))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", uploads))
	}

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseURL:          "/api",
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.authenticate},
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}
