package events

import (
	"context"
	"sync"
)

// MockPublisher records published events for tests.
type MockPublisher struct {
	mu     sync.RWMutex
	events []BookingConfirmed
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{events: make([]BookingConfirmed, 0)}
}

func (m *MockPublisher) PublishBookingConfirmed(_ context.Context, event BookingConfirmed) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, event)

	return nil
}

func (m *MockPublisher) Close() error { return nil }

func (m *MockPublisher) Published() []BookingConfirmed {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]BookingConfirmed, len(m.events))
	copy(events, m.events)
	return events
}

func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = make([]BookingConfirmed, 0)
}
