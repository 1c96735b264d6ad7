package mailer

import (
	"sync"
)

// Email is a message captured by MockMailer.
type Email struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer keeps every message in memory instead of delivering it. Tests
// read the welcome and booking confirmation data back through the typed
// accessors.
type MockMailer struct {
	mu     sync.RWMutex
	emails []Email
	err    error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// FailWith makes every following Send return err without recording it.
func (m *MockMailer) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.emails = append(m.emails, Email{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

func (m *MockMailer) Sent() []Email {
	m.mu.RLock()
	defer m.mu.RUnlock()

	emails := make([]Email, len(m.emails))
	copy(emails, m.emails)
	return emails
}

// BookingConfirmations returns the data of every booking confirmation sent,
// keyed by recipient.
func (m *MockMailer) BookingConfirmations() map[string][]BookingConfirmation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sent := make(map[string][]BookingConfirmation)
	for _, email := range m.emails {
		if data, ok := email.Data.(BookingConfirmation); ok && email.TemplateFile == BookingConfirmationTemplate {
			sent[email.Recipient] = append(sent[email.Recipient], data)
		}
	}

	return sent
}

// Welcomes returns the recipients greeted after signup, in send order.
func (m *MockMailer) Welcomes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var recipients []string
	for _, email := range m.emails {
		if email.TemplateFile == WelcomeTemplate {
			recipients = append(recipients, email.Recipient)
		}
	}

	return recipients
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = nil
	m.err = nil
}
