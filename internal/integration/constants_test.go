package integration_test

import "time"

const (
	// User related constants
	TestUserName     = "John Doe"
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"
	TestAdminName    = "Site Admin"
	TestAdminEmail   = "admin@example.com"

	// Movie related constants
	TestMovieTitle    = "Test Movie"
	TestMovieSynopsis = "A test movie synopsis."
	TestMoviePoster   = "posters/test.jpg"

	// Theater related constants
	TestTheaterName    = "Grand Cinema"
	TestTheaterAddress = "1 Main Street"
	TestTheaterPhoto   = "posters/grand.jpg"
	TestScreenName     = "Screen 1"

	TestShowTime = "18:30"
)

// TestShowDate is a day in the future so bookings count as current.
var TestShowDate = time.Now().AddDate(0, 0, 7).Format(time.DateOnly)
