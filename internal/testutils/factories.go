package testutils

import (
	"time"

	"match-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// ParticipantFactory provides methods to create test Participant data
type ParticipantFactory struct{}

// NewParticipantFactory creates a new ParticipantFactory
func NewParticipantFactory() *ParticipantFactory {
	return &ParticipantFactory{}
}

// Create creates a test Participant with default values
func (f *ParticipantFactory) Create() *models.Participant {
	id := uuid.New()
	return &models.Participant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Suffix keeps generated names unique across a test run
		GameName: "TestPlayer-" + id.String()[:8],
	}
}

// WithGameName sets a custom game name for the participant
func (f *ParticipantFactory) WithGameName(name string) *models.Participant {
	participant := f.Create()
	participant.GameName = name
	return participant
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match with default values
func (f *MatchFactory) Create() *models.Match {
	scheduledAt := time.Now().Add(24 * time.Hour)
	return &models.Match{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScheduledAt:       &scheduledAt,
		Status:            models.MatchStatusScheduled,
		WinningTeam:       models.WinningTeamNone,
		CreatedByUsername: "testadmin",
	}
}

// WithStatus sets a custom status for the match
func (f *MatchFactory) WithStatus(status models.MatchStatus) *models.Match {
	match := f.Create()
	match.Status = status
	return match
}

// WithScheduledAt sets a custom schedule timestamp for the match
func (f *MatchFactory) WithScheduledAt(scheduledAt *time.Time) *models.Match {
	match := f.Create()
	match.ScheduledAt = scheduledAt
	return match
}

// WithCreator sets the creator username for the match
func (f *MatchFactory) WithCreator(username string) *models.Match {
	match := f.Create()
	match.CreatedByUsername = username
	return match
}

// AssignmentsFor builds the ten side/role assignments for a match from ten
// participant IDs, blue side first, in role order.
func AssignmentsFor(participantIDs [10]uuid.UUID) []models.MatchParticipant {
	assignments := make([]models.MatchParticipant, 0, 10)
	i := 0
	for _, team := range models.AllTeamSides() {
		for _, role := range models.AllMatchRoles() {
			assignments = append(assignments, models.MatchParticipant{
				ParticipantID: participantIDs[i],
				Team:          team,
				Role:          role,
				Champion:      "Champion-" + string(team) + "-" + string(role),
			})
			i++
		}
	}
	return assignments
}

// FactorySet provides access to all factories
type FactorySet struct {
	Participant *ParticipantFactory
	Match       *MatchFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Participant: NewParticipantFactory(),
		Match:       NewMatchFactory(),
	}
}
