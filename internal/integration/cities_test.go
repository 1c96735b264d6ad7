package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CityTestSuite struct {
	BaseSuite
}

func TestCitySuite(t *testing.T) {
	suite.Run(t, new(CityTestSuite))
}

func (s *CityTestSuite) TestGetCities() {
	scenario := Scenario{
		Name:           "lists the seeded cities by name",
		Method:         http.MethodGet,
		URL:            "/api/cities",
		ExpectedStatus: http.StatusOK,
		AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
			var resp api.CityListResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))

			require.Len(t, resp.Cities, 10)
			assert.Equal(t, "Ahmedabad", resp.Cities[0].Name)
			assert.Equal(t, "Gujarat", resp.Cities[0].State)
			assert.Equal(t, "Pune", resp.Cities[9].Name)
		},
	}

	scenario.Run(s.T(), s.app)
}
