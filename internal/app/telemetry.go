package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	metricExportInterval = 15 * time.Second
	telemetryShutdown    = 5 * time.Second
)

// InitTelemetry exports traces, metrics and logs to the configured OTLP
// collector and installs the providers globally. Without a collector URL it
// is a no-op and the global no-op providers stay in place.
func (app *Application) InitTelemetry() (func(context.Context), error) {
	if app.config.OtelCollectorUrl == "" {
		app.logger.Info("OpenTelemetry collector URL not set, skipping initialization")

		return func(context.Context) {}, nil
	}

	ctx := context.Background()
	endpoint := app.config.OtelCollectorUrl

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironment(app.config.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithInsecure(), otlptracegrpc.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("otel trace exporter: %w", err)
	}

	metricExporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithInsecure(), otlpmetricgrpc.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("otel metric exporter: %w", err)
	}

	logExporter, err := otlploggrpc.New(ctx, otlploggrpc.WithInsecure(), otlploggrpc.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("otel log exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExporter),
	)
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(metricExportInterval))),
	)
	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetMeterProvider(meterProvider)
	global.SetLoggerProvider(loggerProvider)

	shutdown := func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, telemetryShutdown)
		defer cancel()

		err := errors.Join(
			tracerProvider.Shutdown(ctx),
			meterProvider.Shutdown(ctx),
			loggerProvider.Shutdown(ctx),
		)
		if err != nil {
			app.logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}

	return shutdown, nil
}

// Reasons recorded on bookings.seat_conflicts.
const (
	conflictSeatsTaken   = "seats_taken"
	conflictLostRace     = "lost_race"
	conflictAlreadyOwned = "already_owned"
)

// appMetrics are the booking and scheduling counters exported next to the
// HTTP, Postgres and Redis instrumentation.
type appMetrics struct {
	bookingsCreated metric.Int64Counter
	seatsBooked     metric.Int64Counter
	seatConflicts   metric.Int64Counter
	showsCreated    metric.Int64Counter
	slotsSkipped    metric.Int64Counter
	rateLimited     metric.Int64Counter
}

func newAppMetrics(provider metric.MeterProvider) (*appMetrics, error) {
	meter := provider.Meter(serviceName, metric.WithInstrumentationVersion(version))

	var (
		m    appMetrics
		errs []error
	)

	counter := func(name, unit, description string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithUnit(unit), metric.WithDescription(description))
		errs = append(errs, err)
		return c
	}

	m.bookingsCreated = counter("bookings.created", "{booking}", "Bookings stored")
	m.seatsBooked = counter("bookings.seats", "{seat}", "Seats reserved by stored bookings")
	m.seatConflicts = counter("bookings.seat_conflicts", "{request}", "Booking attempts rejected because of seats taken or held")
	m.showsCreated = counter("shows.created", "{show}", "Show instances scheduled")
	m.slotsSkipped = counter("shows.skipped_slots", "{slot}", "Date and time slots of a batch that were not scheduled")
	m.rateLimited = counter("rate_limit.rejected", "{request}", "Requests rejected by the rate limiter")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *appMetrics) bookingCreated(ctx context.Context, booking *domain.Booking) {
	attrs := metric.WithAttributes(
		attribute.String("theater", booking.Theater),
		attribute.String("movie", booking.Movie),
	)

	m.bookingsCreated.Add(ctx, 1, attrs)
	m.seatsBooked.Add(ctx, int64(len(booking.Seats)), attrs)
}

func (m *appMetrics) seatConflict(ctx context.Context, reason string) {
	m.seatConflicts.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *appMetrics) showsScheduled(ctx context.Context, theaterID, created, skipped int) {
	attrs := metric.WithAttributes(attribute.Int("theater_id", theaterID))

	m.showsCreated.Add(ctx, int64(created), attrs)
	m.slotsSkipped.Add(ctx, int64(skipped), attrs)
}

func (m *appMetrics) rateLimitRejected(ctx context.Context) {
	m.rateLimited.Add(ctx, 1)
}

// MultiHandler fans slog records out to several handlers, for example stdout
// and the OpenTelemetry log bridge.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle passes the record to every handler enabled for its level. A failing
// handler does not stop the others.
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		errs = append(errs, handler.Handle(ctx, record.Clone()))
	}

	return errors.Join(errs...)
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler { return handler.WithAttrs(attrs) })
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler { return handler.WithGroup(name) })
}

func (h *MultiHandler) each(fn func(slog.Handler) slog.Handler) *MultiHandler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = fn(handler)
	}

	return &MultiHandler{handlers: handlers}
}
