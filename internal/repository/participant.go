package repository

import (
	"match-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantRepository handles database operations for participants
type ParticipantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Create creates a new participant
func (r *ParticipantRepository) Create(participant *models.Participant) error {
	return r.db.Create(participant).Error
}

// GetByID retrieves a participant by ID
func (r *ParticipantRepository) GetByID(id uuid.UUID) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.First(&participant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetAll retrieves all participants ordered by game name ascending
func (r *ParticipantRepository) GetAll() ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.Order("game_name ASC").Find(&participants).Error
	return participants, err
}

// Update updates a participant
func (r *ParticipantRepository) Update(participant *models.Participant) error {
	return r.db.Save(participant).Error
}

// Delete deletes a participant by ID
func (r *ParticipantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Participant{}, "id = ?", id).Error
}

// CountAssignments returns the number of match assignments referencing a participant
func (r *ParticipantRepository) CountAssignments(participantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.MatchParticipant{}).Where("participant_id = ?", participantID).Count(&count).Error
	return count, err
}
