package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/quietpage/stacks-api/internal/api"
	apimiddleware "github.com/quietpage/stacks-api/internal/api/middleware"
	"github.com/quietpage/stacks-api/internal/metrics"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware. Recoverer keeps a panicking handler from
	// taking the process down; a malformed request never crashes the server.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)
	r.Use(apimiddleware.MetricsMiddleware(app.collector))

	bookHandler := api.NewBookHandler(app.catalogStore)
	reviewHandler := api.NewReviewHandler(app.catalogStore, app.collector)
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.sessionStore,
		app.jwtService,
		app.hasher,
		app.signer,
		app.sessionLifetime(),
		app.collector,
	)
	healthHandler := api.NewHealthHandler(app.startedAt)
	gate := apimiddleware.NewSessionGate(app.sessionStore, app.jwtService, app.signer)

	// Public catalog endpoints
	r.Get("/", bookHandler.ListBooks)
	r.Get("/isbn/{isbn}", bookHandler.GetBookByISBN)
	r.Get("/author/{author}", bookHandler.SearchByAuthor)
	r.Get("/title/{title}", bookHandler.SearchByTitle)
	r.Get("/review/{isbn}", bookHandler.ListReviews)

	// Registration, rate limited per client IP
	r.With(app.rateLimiter.LimitAuth).Post("/register", authHandler.Register)

	r.Route("/customer", func(r chi.Router) {
		r.With(app.rateLimiter.LimitAuth).Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		// Authenticated routes: session cookie plus a valid, unexpired token
		r.Route("/auth", func(r chi.Router) {
			r.Use(gate.Authenticate)
			r.Put("/review/{isbn}", reviewHandler.UpsertReview)
			r.Delete("/review/{isbn}", reviewHandler.DeleteReview)
			r.Get("/profile", authHandler.Profile)
		})
	})

	// Operational endpoints
	r.Get("/health", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(app.registry))

	return r
}
