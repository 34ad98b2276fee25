package handlers

import (
	"net/http"
	"testing"

	"match-tracker-backend/internal/auth"
	"match-tracker-backend/internal/mocks"
	"match-tracker-backend/internal/service"
	"match-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthGateTestSuite verifies that every mutation route sits behind the auth
// middleware while read routes stay public. Services carry no expectations, so
// any mutation reaching a handler without a valid token fails the test.
type AuthGateTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockParticipant *mocks.MockParticipantServiceInterface
	mockMatch       *mocks.MockMatchServiceInterface
	authService     *auth.AuthService
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest wires the mutation group the same way the route setup does
func (suite *AuthGateTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockParticipant = mocks.NewMockParticipantServiceInterface(suite.ctrl)
	suite.mockMatch = mocks.NewMockMatchServiceInterface(suite.ctrl)

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:   "gate-test-signing-key",
		RedirectURL: "http://localhost:3000",
		Providers: map[string]auth.ProviderConfig{
			"github": {ClientID: "test-client-id", ClientSecret: "test-client-secret"},
		},
	})
	suite.Require().NoError(err)
	suite.authService = authService

	participantHandler := NewParticipantHandler(suite.mockParticipant, "/dashboard/admin")
	matchHandler := NewMatchHandler(suite.mockMatch, "/dashboard/admin")
	authMiddleware := auth.NewAuthMiddleware(authService)

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1")

	v1.GET("/participants", participantHandler.ListParticipants)
	v1.GET("/matches", matchHandler.ListMatches)

	mutations := v1.Group("")
	mutations.Use(authMiddleware.RequireAuth())
	{
		mutations.POST("/participants", participantHandler.CreateParticipant)
		mutations.PUT("/participants/:id", participantHandler.UpdateParticipant)
		mutations.DELETE("/participants/:id", participantHandler.DeleteParticipant)
		mutations.POST("/matches", matchHandler.CreateMatch)
		mutations.PUT("/matches/:id", matchHandler.UpdateMatch)
		mutations.DELETE("/matches/:id", matchHandler.DeleteMatch)
	}
}

// TearDownTest cleans up after each test
func (suite *AuthGateTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestMutationsRejectedWithoutToken checks every mutation route, including
// match deletion, returns 401 when no token is presented.
func (suite *AuthGateTestSuite) TestMutationsRejectedWithoutToken() {
	id := uuid.New().String()
	mutations := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/participants"},
		{http.MethodPut, "/api/v1/participants/" + id},
		{http.MethodDelete, "/api/v1/participants/" + id},
		{http.MethodPost, "/api/v1/matches"},
		{http.MethodPut, "/api/v1/matches/" + id},
		{http.MethodDelete, "/api/v1/matches/" + id},
	}

	for _, m := range mutations {
		recorder := suite.httpSuite.MakeRequest(m.method, m.path, nil)
		assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code, "%s %s", m.method, m.path)
	}
}

// TestMutationsRejectedWithInvalidToken checks a garbage bearer token is
// rejected the same way.
func (suite *AuthGateTestSuite) TestMutationsRejectedWithInvalidToken() {
	headers := map[string]string{"Authorization": "Bearer not-a-real-token"}

	recorder := suite.httpSuite.MakeRequestWithHeaders(
		http.MethodDelete, "/api/v1/matches/"+uuid.New().String(), nil, headers)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestMutationAllowedWithValidToken checks a valid token passes the gate and
// the session username flows to the service.
func (suite *AuthGateTestSuite) TestMutationAllowedWithValidToken() {
	token, err := suite.authService.GenerateJWT(&auth.UserProfile{
		ID:       12345,
		Username: "octocat",
		Email:    "octocat@example.com",
	}, "github")
	suite.Require().NoError(err)

	id := uuid.New()
	suite.mockMatch.EXPECT().Delete(id).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(
		http.MethodDelete, "/api/v1/matches/"+id.String(), nil,
		map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestReadsStayPublic checks list routes answer without any token
func (suite *AuthGateTestSuite) TestReadsStayPublic() {
	suite.mockParticipant.EXPECT().List().Return([]service.ParticipantResponse{}, nil).Times(1)
	suite.mockMatch.EXPECT().List().Return([]service.MatchResponse{}, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/participants", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/matches", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestAuthGateTestSuite runs the test suite
func TestAuthGateTestSuite(t *testing.T) {
	suite.Run(t, new(AuthGateTestSuite))
}
