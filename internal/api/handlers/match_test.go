package handlers

import (
	"net/http"
	"testing"

	apperrors "match-tracker-backend/internal/errors"
	"match-tracker-backend/internal/mocks"
	"match-tracker-backend/internal/service"
	"match-tracker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MatchHandlerTestSuite defines the test suite for MatchHandler
type MatchHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMatchServiceInterface
	handler     *MatchHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite. Mutation routes get a stub session
// middleware standing in for the real auth middleware's context values.
func (suite *MatchHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMatchServiceInterface(suite.ctrl)
	suite.handler = NewMatchHandler(suite.mockService, "/dashboard/admin")
	suite.httpSuite = testutils.SetupHTTPTest()

	session := func(c *gin.Context) {
		c.Set("username", "octocat")
		c.Next()
	}

	suite.httpSuite.Router.POST("/matches", session, suite.handler.CreateMatch)
	suite.httpSuite.Router.POST("/matches-anon", suite.handler.CreateMatch)
	suite.httpSuite.Router.PUT("/matches/:id", session, suite.handler.UpdateMatch)
	suite.httpSuite.Router.DELETE("/matches/:id", session, suite.handler.DeleteMatch)
	suite.httpSuite.Router.GET("/matches/:id", suite.handler.GetMatch)
	suite.httpSuite.Router.GET("/matches", suite.handler.ListMatches)
}

// TearDownTest cleans up after each test
func (suite *MatchHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// matchForm builds a complete create-match form submission
func matchForm() map[string]string {
	form := map[string]string{
		"scheduledAt": "2026-09-15T19:30",
		"status":      "scheduled",
	}
	slots := []string{
		"blueTop", "blueJungle", "blueMid", "blueBot", "blueSupport",
		"redTop", "redJungle", "redMid", "redBot", "redSupport",
	}
	for _, slot := range slots {
		form[slot+".participantId"] = uuid.New().String()
		form[slot+".champion"] = "Champion-" + slot
	}
	return form
}

// TestCreateMatch tests POST /matches with a full form submission
func (suite *MatchHandlerTestSuite) TestCreateMatch() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), "octocat").
		DoAndReturn(func(req *service.CreateMatchRequest, createdByUsername string) (*service.MatchResponse, error) {
			assert.Equal(suite.T(), "scheduled", req.Status)
			assert.NotEmpty(suite.T(), req.BlueTopParticipantID)
			assert.NotEmpty(suite.T(), req.RedSupportParticipantID)
			return &service.MatchResponse{ID: uuid.New(), CreatedByUsername: createdByUsername}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/matches", matchForm())

	assert.Equal(suite.T(), http.StatusSeeOther, recorder.Code)
	assert.Equal(suite.T(), "/dashboard/admin", recorder.Header().Get("Location"))
}

// TestCreateMatchNoSession tests that a missing session username is rejected
// before the service is called.
func (suite *MatchHandlerTestSuite) TestCreateMatchNoSession() {
	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/matches-anon", matchForm())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "unauthorized")
}

// TestCreateMatchValidationError tests the rejected-payload path
func (suite *MatchHandlerTestSuite) TestCreateMatchValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), "octocat").
		Return(nil, apperrors.NewValidationError("scheduledAt", "invalid timestamp")).
		Times(1)

	form := matchForm()
	form["scheduledAt"] = "next tuesday"
	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/matches", form)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid timestamp")
}

// TestUpdateMatch tests PUT /matches/:id redirecting on success
func (suite *MatchHandlerTestSuite) TestUpdateMatch() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(id, gomock.Any()).
		DoAndReturn(func(matchID uuid.UUID, req *service.UpdateMatchRequest) (*service.MatchResponse, error) {
			assert.Equal(suite.T(), "completed", req.Status)
			assert.Equal(suite.T(), "blue", req.WinningTeam)
			return &service.MatchResponse{ID: matchID}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPut, "/matches/"+id.String(), map[string]string{
		"status":      "completed",
		"winningTeam": "blue",
	})

	assert.Equal(suite.T(), http.StatusSeeOther, recorder.Code)
	assert.Equal(suite.T(), "/dashboard/admin", recorder.Header().Get("Location"))
}

// TestUpdateMatchNotFound tests PUT against a missing match
func (suite *MatchHandlerTestSuite) TestUpdateMatchNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(id, gomock.Any()).
		Return(nil, apperrors.ErrMatchNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeFormRequest(http.MethodPut, "/matches/"+id.String(), map[string]string{
		"status": "completed",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "match not found")
}

// TestUpdateMatchInvalidID tests PUT with a malformed UUID
func (suite *MatchHandlerTestSuite) TestUpdateMatchInvalidID() {
	recorder := suite.httpSuite.MakeFormRequest(http.MethodPut, "/matches/not-a-uuid", map[string]string{
		"status": "completed",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid match ID")
}

// TestDeleteMatch tests DELETE /matches/:id returning 204
func (suite *MatchHandlerTestSuite) TestDeleteMatch() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/matches/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Empty(suite.T(), recorder.Body.String())
}

// TestDeleteMatchNotFound tests DELETE against a missing match
func (suite *MatchHandlerTestSuite) TestDeleteMatchNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrMatchNotFound).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/matches/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "match not found")
}

// TestDeleteMatchInvalidID tests DELETE with a malformed UUID
func (suite *MatchHandlerTestSuite) TestDeleteMatchInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/matches/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid match ID")
}

// TestGetMatch tests GET /matches/:id
func (suite *MatchHandlerTestSuite) TestGetMatch() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetByID(id).
		Return(&service.MatchResponse{ID: id, CreatedByUsername: "octocat"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/matches/"+id.String(), nil)

	var response service.MatchResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), id, response.ID)
	assert.Equal(suite.T(), "octocat", response.CreatedByUsername)
}

// TestGetMatchNotFound tests GET against a missing match
func (suite *MatchHandlerTestSuite) TestGetMatchNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrMatchNotFound).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/matches/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "match not found")
}

// TestListMatches tests GET /matches
func (suite *MatchHandlerTestSuite) TestListMatches() {
	suite.mockService.EXPECT().
		List().
		Return([]service.MatchResponse{
			{ID: uuid.New()},
			{ID: uuid.New()},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/matches", nil)

	var response []service.MatchResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 2)
}

// TestMatchHandlerTestSuite runs the test suite
func TestMatchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}
