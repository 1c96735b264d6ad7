package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/auth"
	"github.com/metinatakli/cinema-booking-system/internal/events"
	"github.com/metinatakli/cinema-booking-system/internal/guard"
	"github.com/metinatakli/cinema-booking-system/internal/mailer"
	"github.com/metinatakli/cinema-booking-system/internal/mocks"
	"github.com/metinatakli/cinema-booking-system/internal/validator"
	"go.opentelemetry.io/otel/metric/noop"
)

const testJWTSecret = "test-secret-test-secret-test-secret"

func newTestApplication(opts ...func(*Application)) *Application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &Application{
		config:    Config{Env: "test"},
		validator: validator.NewValidator(),
		logger:    logger,
		userRepo:  &mocks.MockUserRepo{},
		mailer:    mailer.NewMockMailer(),
		publisher: events.NewMockPublisher(),
		tokens:    auth.NewIssuer(testJWTSecret, time.Hour),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.guard == nil {
		app.guard = guard.New(app.movieRepo, app.theaterRepo, app.showRepo, app.bookingRepo, nil, logger)
	}

	if app.metrics == nil {
		app.metrics, _ = newAppMetrics(noop.NewMeterProvider())
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}

		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// executeFormRequest builds a multipart request with the given fields and,
// when content is not nil, a file part named fileField.
func executeFormRequest(t *testing.T, method, url string, fields map[string]string, fileField string, content []byte) (*httptest.ResponseRecorder, *http.Request) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}

	if content != nil {
		part, err := mw.CreateFormFile(fileField, "image.jpg")
		if err != nil {
			t.Fatal(err)
		}

		if _, err := part.Write(content); err != nil {
			t.Fatal(err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	return w, r
}

func withUser(app *Application, r *http.Request, userId int) *http.Request {
	return app.contextSetUserId(r, userId)
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

// jpegBytes is the smallest payload mimetype detects as image/jpeg.
var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
