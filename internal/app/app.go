package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-booking-system/internal/auth"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/events"
	"github.com/metinatakli/cinema-booking-system/internal/guard"
	"github.com/metinatakli/cinema-booking-system/internal/mailer"
	"github.com/metinatakli/cinema-booking-system/internal/repository"
	"github.com/metinatakli/cinema-booking-system/internal/seatlock"
	"github.com/metinatakli/cinema-booking-system/internal/storage"
	appvalidator "github.com/metinatakli/cinema-booking-system/internal/validator"
	"github.com/metinatakli/cinema-booking-system/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
)

const serviceName = "cinema-booking-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate
	mailer    mailer.Mailer
	publisher events.Publisher
	images    *storage.ImageStore
	tokens    *auth.Issuer
	guard     *guard.Guard
	metrics   *appMetrics
	wg        sync.WaitGroup

	userRepo    domain.UserRepository
	movieRepo   domain.MovieRepository
	theaterRepo domain.TheaterRepository
	showRepo    domain.ShowRepository
	bookingRepo domain.BookingRepository
	cityRepo    domain.CityRepository
}

type Repositories struct {
	Users    domain.UserRepository
	Movies   domain.MovieRepository
	Theaters domain.TheaterRepository
	Shows    domain.ShowRepository
	Bookings domain.BookingRepository
	Cities   domain.CityRepository
}

func NewRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    repository.NewPostgresUserRepository(db),
		Movies:   repository.NewPostgresMovieRepository(db),
		Theaters: repository.NewPostgresTheaterRepository(db),
		Shows:    repository.NewPostgresShowRepository(db),
		Bookings: repository.NewPostgresBookingRepository(db),
		Cities:   repository.NewPostgresCityRepository(db),
	}
}

func Run() error {
	// a missing .env file is fine, the environment and flags still apply
	_ = godotenv.Load()

	cfg, displayVersion := parseConfig(os.Args[1:])

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret must be provided with -jwt-secret or JWT_SECRET")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	bootstrap := &Application{config: cfg, logger: logger}

	shutdownTelemetry, err := bootstrap.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(
			slog.NewTextHandler(os.Stdout, nil),
			otelslog.NewHandler(serviceName),
		))
	}

	if cfg.DB.Migrate {
		err = Migrate(cfg.DB.DSN, cfg.DB.MigrationsSource)
		if err != nil {
			return err
		}

		logger.Info("database migrations applied", "source", cfg.DB.MigrationsSource)
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	images, err := storage.NewImageStore(cfg.UploadsDir)
	if err != nil {
		return err
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		publisher = events.NewRabbitPublisher(cfg.RabbitMQ.URL, logger)
	}
	defer publisher.Close()

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		publisher,
		images,
		NewRepositories(db),
	)

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	publisher events.Publisher,
	images *storage.ImageStore,
	repos Repositories) *Application {

	var locker guard.SeatLocker
	if redisClient != nil {
		locker = seatlock.New(redisClient, cfg.SeatHoldTTL, logger)
	}

	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	metrics, err := newAppMetrics(otel.GetMeterProvider())
	if err != nil {
		logger.Warn("application metrics disabled", "error", err)
		metrics, _ = newAppMetrics(noop.NewMeterProvider())
	}

	return &Application{
		config:      cfg,
		logger:      logger,
		db:          db,
		redis:       redisClient,
		validator:   validator,
		mailer:      mailer,
		publisher:   publisher,
		images:      images,
		tokens:      auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL),
		guard:       guard.New(repos.Movies, repos.Theaters, repos.Shows, repos.Bookings, locker, logger),
		metrics:     metrics,
		userRepo:    repos.Users,
		movieRepo:   repos.Movies,
		theaterRepo: repos.Theaters,
		showRepo:    repos.Shows,
		bookingRepo: repos.Bookings,
		cityRepo:    repos.Cities,
	}
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		app.logger.Info("completing background tasks", "addr", srv.Addr)

		app.wg.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

// background runs fn in a goroutine that is awaited on shutdown. Panics are
// logged, never propagated.
func (app *Application) background(logger *slog.Logger, task string, fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred during background task", "task", task, "panic", err)
			}
		}()

		fn()
	}()
}
