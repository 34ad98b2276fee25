package repository

import (
	"match-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ParticipantRepositoryInterface defines the interface for participant repository operations
type ParticipantRepositoryInterface interface {
	Create(participant *models.Participant) error
	GetByID(id uuid.UUID) (*models.Participant, error)
	GetAll() ([]models.Participant, error)
	Update(participant *models.Participant) error
	Delete(id uuid.UUID) error
	CountAssignments(participantID uuid.UUID) (int64, error)
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	CreateWithAssignments(match *models.Match, assignments []models.MatchParticipant) error
	GetByID(id uuid.UUID) (*models.Match, error)
	GetAll() ([]models.Match, error)
	GetAllBare() ([]models.Match, error)
	Update(match *models.Match, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}
