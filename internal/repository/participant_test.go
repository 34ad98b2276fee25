//go:build integration
// +build integration

package repository

import (
	"testing"

	"match-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ParticipantRepositoryTestSuite tests the ParticipantRepository
type ParticipantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ParticipantRepository
	matchRepo     *MatchRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ParticipantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewParticipantRepository(suite.baseTestSuite.DB)
	suite.matchRepo = NewMatchRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ParticipantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ParticipantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ParticipantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createRoster persists ten participants and returns their IDs in slot order
func (suite *ParticipantRepositoryTestSuite) createRoster() [10]uuid.UUID {
	var ids [10]uuid.UUID
	for i := range ids {
		p := suite.factories.Participant.Create()
		suite.NoError(suite.repo.Create(p))
		ids[i] = p.ID
	}
	return ids
}

// TestCreate tests creating a new participant
func (suite *ParticipantRepositoryTestSuite) TestCreate() {
	participant := suite.factories.Participant.Create()

	err := suite.repo.Create(participant)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, participant.ID)
	suite.NotZero(participant.CreatedAt)
	suite.NotZero(participant.UpdatedAt)
}

// TestGetByID tests retrieving a participant by ID
func (suite *ParticipantRepositoryTestSuite) TestGetByID() {
	participant := suite.factories.Participant.WithGameName("Aurora")
	err := suite.repo.Create(participant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(participant.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(participant.ID, retrieved.ID)
	suite.Equal("Aurora", retrieved.GameName)
}

// TestGetByIDNotFound tests retrieving a non-existent participant
func (suite *ParticipantRepositoryTestSuite) TestGetByIDNotFound() {
	nonExistentID := uuid.New()

	retrieved, err := suite.repo.GetByID(nonExistentID)

	suite.Error(err)
	suite.Nil(retrieved)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllOrdering tests that listing returns participants sorted by game name
func (suite *ParticipantRepositoryTestSuite) TestGetAllOrdering() {
	names := []string{"Zephyr", "Aurora", "Mallory"}
	for _, name := range names {
		suite.NoError(suite.repo.Create(suite.factories.Participant.WithGameName(name)))
	}

	participants, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(participants, 3)
	suite.Equal("Aurora", participants[0].GameName)
	suite.Equal("Mallory", participants[1].GameName)
	suite.Equal("Zephyr", participants[2].GameName)
}

// TestUpdate tests renaming a participant
func (suite *ParticipantRepositoryTestSuite) TestUpdate() {
	participant := suite.factories.Participant.WithGameName("OldName")
	suite.NoError(suite.repo.Create(participant))

	participant.GameName = "NewName"
	err := suite.repo.Update(participant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(participant.ID)
	suite.NoError(err)
	suite.Equal("NewName", retrieved.GameName)
}

// TestDelete tests deleting a participant
func (suite *ParticipantRepositoryTestSuite) TestDelete() {
	participant := suite.factories.Participant.Create()
	suite.NoError(suite.repo.Create(participant))

	err := suite.repo.Delete(participant.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(participant.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCountAssignments tests counting the match assignments of a participant
func (suite *ParticipantRepositoryTestSuite) TestCountAssignments() {
	ids := suite.createRoster()

	count, err := suite.repo.CountAssignments(ids[0])
	suite.NoError(err)
	suite.Equal(int64(0), count)

	match := suite.factories.Match.Create()
	suite.NoError(suite.matchRepo.CreateWithAssignments(match, testutils.AssignmentsFor(ids)))

	count, err = suite.repo.CountAssignments(ids[0])
	suite.NoError(err)
	suite.Equal(int64(1), count)

	// Participants outside the roster stay at zero
	outsider := suite.factories.Participant.Create()
	suite.NoError(suite.repo.Create(outsider))

	count, err = suite.repo.CountAssignments(outsider.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestParticipantRepositoryTestSuite runs the test suite
func TestParticipantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ParticipantRepositoryTestSuite))
}
