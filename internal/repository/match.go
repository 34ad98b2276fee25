package repository

import (
	"match-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches and their assignments
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// CreateWithAssignments inserts the match row and its assignment rows in a
// single transaction. A failure on any insert rolls back everything, so an
// orphan match with no assignments can never be left behind.
func (r *MatchRepository) CreateWithAssignments(match *models.Match, assignments []models.MatchParticipant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(match).Error; err != nil {
			return err
		}
		for i := range assignments {
			assignments[i].MatchID = match.ID
		}
		if err := tx.Create(&assignments).Error; err != nil {
			return err
		}
		return nil
	})
}

// GetByID retrieves a match with its assignments and their participants
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.Preload("Participants").Preload("Participants.Participant").First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetAll retrieves all matches with their assignments and participants,
// ordered by schedule timestamp descending. Unscheduled matches sort last;
// the null ordering is pinned rather than left to the store default.
func (r *MatchRepository) GetAll() ([]models.Match, error) {
	var matches []models.Match
	err := r.db.Preload("Participants").Preload("Participants.Participant").
		Order("scheduled_at DESC NULLS LAST").
		Find(&matches).Error
	return matches, err
}

// GetAllBare retrieves all match rows without joins or ordering guarantees
func (r *MatchRepository) GetAllBare() ([]models.Match, error) {
	var matches []models.Match
	err := r.db.Find(&matches).Error
	return matches, err
}

// Update applies the given scalar column updates to a match by ID.
// Assignments are immutable after creation and are never touched here.
func (r *MatchRepository) Update(match *models.Match, updates map[string]interface{}) error {
	return r.db.Model(match).Updates(updates).Error
}

// Delete deletes a match by ID. Assignment rows go with it via the
// ON DELETE CASCADE constraint on match_participants.
func (r *MatchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Match{}, "id = ?", id).Error
}
