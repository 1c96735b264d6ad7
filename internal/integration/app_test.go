package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/app"
	"github.com/metinatakli/cinema-booking-system/internal/auth"
	"github.com/metinatakli/cinema-booking-system/internal/events"
	"github.com/metinatakli/cinema-booking-system/internal/mailer"
	"github.com/metinatakli/cinema-booking-system/internal/storage"
	appvalidator "github.com/metinatakli/cinema-booking-system/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App       *app.Application
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Mailer    *mailer.MockMailer
	Publisher *events.MockPublisher
	Tokens    *auth.Issuer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()
	publisher := events.NewMockPublisher()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	images, err := storage.NewImageStore(cfg.UploadsDir)
	if err != nil {
		redisClient.Close()
		db.Close()
		return nil, err
	}

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer,
		publisher,
		images,
		app.NewRepositories(db),
	)

	return &TestApp{
		App:       application,
		DB:        db,
		Redis:     redisClient,
		Mailer:    mailer,
		Publisher: publisher,
		Tokens:    auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL),
	}, nil
}

func (a *TestApp) Close() {
	a.Redis.Close()
	a.DB.Close()
}
