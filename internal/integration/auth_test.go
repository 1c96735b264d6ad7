package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	BaseSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) SetupTest() {
	truncateAll(s.T(), s.app.DB)
	s.app.Mailer.Reset()
}

func (s *AuthTestSuite) TestSignup() {
	scenarios := []Scenario{
		{
			Name:   "creates the user and sends a welcome mail",
			Method: http.MethodPost,
			URL:    "/api/auth/signup",
			Body: strings.NewReader(`{
				"name": "John Doe",
				"email": "Test@Example.com",
				"password": "Test123!@#"
			}`),
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"message": "User created successfully",
				"user": {
					"id": 1,
					"name": "John Doe",
					"email": "test@example.com"
				}
			}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				count := countRows(t, app.DB, "SELECT COUNT(*) FROM users WHERE email = $1", TestUserEmail)
				assert.Equal(t, 1, count)

				require.Eventually(t, func() bool {
					return len(app.Mailer.Welcomes()) == 1
				}, 2*time.Second, 20*time.Millisecond)

				assert.Equal(t, []string{TestUserEmail}, app.Mailer.Welcomes())
			},
		},
		{
			Name:   "rejects an existing email",
			Method: http.MethodPost,
			URL:    "/api/auth/signup",
			Body: strings.NewReader(`{
				"name": "John Doe",
				"email": "test@example.com",
				"password": "Test123!@#"
			}`),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "User already exists"
			}`,
		},
		{
			Name:   "rejects a weak password",
			Method: http.MethodPost,
			URL:    "/api/auth/signup",
			Body: strings.NewReader(`{
				"name": "Jane Doe",
				"email": "jane@example.com",
				"password": "password"
			}`),
			ExpectedStatus: http.StatusUnprocessableEntity,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				count := countRows(t, app.DB, "SELECT COUNT(*) FROM users WHERE email = $1", "jane@example.com")
				assert.Zero(t, count)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *AuthTestSuite) TestLogin() {
	userID := insertUser(s.T(), s.app.DB, TestUserName, TestUserEmail, TestUserPassword, false)

	scenarios := []Scenario{
		{
			Name:   "issues a token for valid credentials",
			Method: http.MethodPost,
			URL:    "/api/auth/login",
			Body: strings.NewReader(`{
				"email": "test@example.com",
				"password": "Test123!@#"
			}`),
			ExpectedStatus: http.StatusOK,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var resp api.LoginResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))

				assert.Equal(t, "Login successful", resp.Message)
				assert.Equal(t, userID, resp.User.Id)

				claims := jwt.MapClaims{}
				_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
					return []byte(jwtSecret), nil
				})
				require.NoError(t, err)
			},
		},
		{
			Name:   "rejects a wrong password",
			Method: http.MethodPost,
			URL:    "/api/auth/login",
			Body: strings.NewReader(`{
				"email": "test@example.com",
				"password": "Wrong123!@#"
			}`),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "Invalid email or password"
			}`,
		},
		{
			Name:   "rejects an unknown email",
			Method: http.MethodPost,
			URL:    "/api/auth/login",
			Body: strings.NewReader(`{
				"email": "nobody@example.com",
				"password": "Test123!@#"
			}`),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "Invalid email or password"
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *AuthTestSuite) TestCheckAdmin() {
	userID := insertUser(s.T(), s.app.DB, TestUserName, TestUserEmail, TestUserPassword, false)
	adminID := insertUser(s.T(), s.app.DB, TestAdminName, TestAdminEmail, TestUserPassword, true)

	scenarios := []Scenario{
		{
			Name:           "regular user",
			Method:         http.MethodGet,
			URL:            "/api/auth/check-admin",
			Headers:        s.bearer(userID),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"isAdmin": false,
				"user": {"id": 1, "name": "John Doe", "email": "test@example.com"}
			}`,
		},
		{
			Name:           "admin",
			Method:         http.MethodGet,
			URL:            "/api/auth/check-admin",
			Headers:        s.bearer(adminID),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"isAdmin": true,
				"user": {"id": 2, "name": "Site Admin", "email": "admin@example.com"}
			}`,
		},
		{
			Name:           "no token",
			Method:         http.MethodGet,
			URL:            "/api/auth/check-admin",
			ExpectedStatus: http.StatusUnauthorized,
			ExpectedResponse: `{
				"message": "No token, authorization denied"
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *AuthTestSuite) TestDeleteAccount() {
	userID := insertUser(s.T(), s.app.DB, TestUserName, TestUserEmail, TestUserPassword, false)

	scenario := Scenario{
		Name:           "removes the user",
		Method:         http.MethodDelete,
		URL:            "/api/auth/delete-account",
		Headers:        s.bearer(userID),
		ExpectedStatus: http.StatusOK,
		ExpectedResponse: `{
			"message": "Account deleted successfully"
		}`,
		AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
			assert.Zero(t, countRows(t, app.DB, "SELECT COUNT(*) FROM users"))
		},
	}

	scenario.Run(s.T(), s.app)
}
