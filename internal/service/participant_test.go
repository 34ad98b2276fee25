package service_test

import (
	"testing"
	"time"

	"match-tracker-backend/internal/database/models"
	apperrors "match-tracker-backend/internal/errors"
	"match-tracker-backend/internal/mocks"
	"match-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ParticipantServiceTestSuite defines the test suite for ParticipantService
type ParticipantServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockParticipantRepositoryInterface
	participantService *service.ParticipantService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ParticipantServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockParticipantRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.participantService = service.NewParticipantService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ParticipantServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateParticipant tests creating a participant
func (suite *ParticipantServiceTestSuite) TestCreateParticipant() {
	req := &service.UpsertParticipantRequest{
		GameName: "Aurora",
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Participant) error {
			p.ID = uuid.New()
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			return nil
		}).
		Times(1)

	response, err := suite.participantService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Aurora", response.GameName)
	assert.NotEqual(suite.T(), uuid.Nil, response.ID)
}

// TestCreateParticipantEmptyName tests that an empty game name never reaches the repository
func (suite *ParticipantServiceTestSuite) TestCreateParticipantEmptyName() {
	req := &service.UpsertParticipantRequest{
		GameName: "",
	}

	response, err := suite.participantService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateParticipantNameTooLong tests the 100 character limit
func (suite *ParticipantServiceTestSuite) TestCreateParticipantNameTooLong() {
	name := make([]byte, 101)
	for i := range name {
		name[i] = 'a'
	}
	req := &service.UpsertParticipantRequest{
		GameName: string(name),
	}

	response, err := suite.participantService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateParticipant tests renaming a participant
func (suite *ParticipantServiceTestSuite) TestUpdateParticipant() {
	id := uuid.New()
	existing := &models.Participant{
		BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		GameName:  "OldName",
	}

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(existing, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *models.Participant) error {
			assert.Equal(suite.T(), "NewName", p.GameName)
			return nil
		}).
		Times(1)

	response, err := suite.participantService.Update(id, &service.UpsertParticipantRequest{GameName: "NewName"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "NewName", response.GameName)
}

// TestUpdateParticipantNotFound tests renaming a missing participant
func (suite *ParticipantServiceTestSuite) TestUpdateParticipantNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.participantService.Update(id, &service.UpsertParticipantRequest{GameName: "NewName"})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrParticipantNotFound)
}

// TestDeleteParticipant tests deleting an unreferenced participant
func (suite *ParticipantServiceTestSuite) TestDeleteParticipant() {
	id := uuid.New()
	existing := &models.Participant{
		BaseModel: models.BaseModel{ID: id},
		GameName:  "Aurora",
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().CountAssignments(id).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().Delete(id).Return(nil).Times(1)

	err := suite.participantService.Delete(id)

	assert.NoError(suite.T(), err)
}

// TestDeleteParticipantInUse tests that a referenced participant is not deleted
func (suite *ParticipantServiceTestSuite) TestDeleteParticipantInUse() {
	id := uuid.New()
	existing := &models.Participant{
		BaseModel: models.BaseModel{ID: id},
		GameName:  "Aurora",
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().CountAssignments(id).Return(int64(3), nil).Times(1)
	// Delete must never be called

	err := suite.participantService.Delete(id)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrParticipantInUse)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestDeleteParticipantNotFound tests deleting a missing participant
func (suite *ParticipantServiceTestSuite) TestDeleteParticipantNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.participantService.Delete(id)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrParticipantNotFound)
}

// TestGetParticipantByID tests retrieving a participant
func (suite *ParticipantServiceTestSuite) TestGetParticipantByID() {
	id := uuid.New()
	existing := &models.Participant{
		BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		GameName:  "Aurora",
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)

	response, err := suite.participantService.GetByID(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, response.ID)
	assert.Equal(suite.T(), "Aurora", response.GameName)
}

// TestGetParticipantByIDNotFound tests retrieving a missing participant
func (suite *ParticipantServiceTestSuite) TestGetParticipantByIDNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.participantService.GetByID(id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrParticipantNotFound)
}

// TestListParticipants tests listing all participants
func (suite *ParticipantServiceTestSuite) TestListParticipants() {
	participants := []models.Participant{
		{BaseModel: models.BaseModel{ID: uuid.New()}, GameName: "Aurora"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, GameName: "Blitzwing"},
	}

	suite.mockRepo.EXPECT().GetAll().Return(participants, nil).Times(1)

	responses, err := suite.participantService.List()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "Aurora", responses[0].GameName)
	assert.Equal(suite.T(), "Blitzwing", responses[1].GameName)
}

// TestParticipantServiceTestSuite runs the test suite
func TestParticipantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ParticipantServiceTestSuite))
}
