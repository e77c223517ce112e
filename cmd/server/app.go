package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quietpage/stacks-api/internal/api/middleware"
	"github.com/quietpage/stacks-api/internal/config"
	"github.com/quietpage/stacks-api/internal/metrics"
	"github.com/quietpage/stacks-api/internal/platform/memory"
	"github.com/quietpage/stacks-api/internal/service/auth"
	"github.com/quietpage/stacks-api/internal/store"
)

// sessionJanitorInterval is how often expired session entries are swept.
const sessionJanitorInterval = 10 * time.Minute

// application holds all wired dependencies. Stores are constructed once here
// and passed by reference into the handler layer; nothing reaches for
// ambient globals, so tests can build fresh instances per test.
type application struct {
	config *config.Config
	logger *slog.Logger

	catalogStore store.CatalogStore
	userStore    store.UserStore
	sessionStore *memory.SessionStore

	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	signer     *auth.CookieSigner

	registry  *prometheus.Registry
	collector *metrics.Collector

	rateLimiter *middleware.RateLimiter

	startedAt time.Time
}

// newApplication wires the stores and services from configuration. The
// catalog is seeded here; everything is in-memory and resets on restart.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	signer, err := auth.NewCookieSigner(cfg.Auth.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie signer: %w", err)
	}

	hasher := auth.NewBcryptHasher()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	return &application{
		config:       cfg,
		logger:       appLogger,
		catalogStore: memory.NewCatalogStore(memory.SeedBooks()),
		userStore:    memory.NewUserStore(hasher),
		sessionStore: memory.NewSessionStore(sessionJanitorInterval),
		jwtService:   jwtService,
		hasher:       hasher,
		signer:       signer,
		registry:     registry,
		collector:    collector,
		rateLimiter:  middleware.NewRateLimiter(cfg.RateLimit),
		startedAt:    time.Now().UTC(),
	}, nil
}

// sessionLifetime converts the configured session lifetime to a duration.
func (app *application) sessionLifetime() time.Duration {
	return time.Duration(app.config.Auth.SessionLifetimeHours) * time.Hour
}

// cleanup stops the background goroutines.
func (app *application) cleanup() {
	app.sessionStore.Stop()
	app.rateLimiter.Stop()
}
