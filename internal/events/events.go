// Package events publishes booking events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const BookingConfirmedQueue = "booking.confirmed"

type BookingConfirmed struct {
	BookingID   int       `json:"bookingId"`
	UserID      int       `json:"userId"`
	Theater     string    `json:"theater"`
	Movie       string    `json:"movie"`
	Screen      string    `json:"screen"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Seats       []string  `json:"seats"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

func NewBookingConfirmed(b *domain.Booking) BookingConfirmed {
	return BookingConfirmed{
		BookingID:   b.ID,
		UserID:      b.UserID,
		Theater:     b.Theater,
		Movie:       b.Movie,
		Screen:      b.Screen,
		Date:        b.Date.Format(domain.DateLayout),
		Time:        b.Time,
		Seats:       b.Seats,
		ConfirmedAt: b.CreatedAt.UTC(),
	}
}

type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error
	Close() error
}

type NopPublisher struct{}

func (NopPublisher) PublishBookingConfirmed(context.Context, BookingConfirmed) error { return nil }
func (NopPublisher) Close() error                                                   { return nil }

// RabbitPublisher keeps one connection to the broker and reopens it on the
// next publish after it drops.
type RabbitPublisher struct {
	url    string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitPublisher(url string, logger *slog.Logger) *RabbitPublisher {
	return &RabbitPublisher{
		url:    url,
		logger: logger,
	}
}

func (p *RabbitPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	err = ch.PublishWithContext(ctx, "", BookingConfirmedQueue, false, false, msg)
	if err != nil {
		p.reset()
		return fmt.Errorf("publish %s: %w", BookingConfirmedQueue, err)
	}

	return nil
}

func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(BookingConfirmedQueue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	p.conn, p.ch = conn, ch
	p.logger.Info("connected to message broker", "queue", BookingConfirmedQueue)

	return ch, nil
}

func (p *RabbitPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}

	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reset()

	return nil
}
