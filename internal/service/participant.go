package service

import (
	"errors"
	"fmt"
	"time"

	"match-tracker-backend/internal/database/models"
	apperrors "match-tracker-backend/internal/errors"
	"match-tracker-backend/internal/logger"
	"match-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantService handles business logic for participants
type ParticipantService struct {
	repo      repository.ParticipantRepositoryInterface
	validator *validator.Validate
}

// NewParticipantService creates a new participant service
func NewParticipantService(repo repository.ParticipantRepositoryInterface, validator *validator.Validate) *ParticipantService {
	return &ParticipantService{
		repo:      repo,
		validator: validator,
	}
}

// UpsertParticipantRequest represents the request to create or rename a participant
type UpsertParticipantRequest struct {
	GameName string `json:"gameName" form:"gameName" validate:"required,min=1,max=100"`
}

// ParticipantResponse represents the response for participant operations
type ParticipantResponse struct {
	ID        uuid.UUID `json:"id"`
	GameName  string    `json:"gameName"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// Create creates a new participant
func (s *ParticipantService) Create(req *UpsertParticipantRequest) (*ParticipantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	participant := &models.Participant{
		GameName: req.GameName,
	}

	if err := s.repo.Create(participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return s.toResponse(participant), nil
}

// Update renames an existing participant
func (s *ParticipantService) Update(id uuid.UUID, req *UpsertParticipantRequest) (*ParticipantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	participant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	participant.GameName = req.GameName
	if err := s.repo.Update(participant); err != nil {
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return s.toResponse(participant), nil
}

// Delete removes a participant. Deletion is rejected while any match
// assignment still references the participant.
func (s *ParticipantService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrParticipantNotFound
		}
		return fmt.Errorf("failed to get participant: %w", err)
	}

	count, err := s.repo.CountAssignments(id)
	if err != nil {
		return fmt.Errorf("failed to count assignments: %w", err)
	}
	if count > 0 {
		return apperrors.ErrParticipantInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	logger.New().Infof("Participant %s deleted", id)
	return nil
}

// GetByID retrieves a participant by ID
func (s *ParticipantService) GetByID(id uuid.UUID) (*ParticipantResponse, error) {
	participant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return s.toResponse(participant), nil
}

// List retrieves all participants ordered by game name ascending
func (s *ParticipantService) List() ([]ParticipantResponse, error) {
	participants, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	responses := make([]ParticipantResponse, len(participants))
	for i := range participants {
		responses[i] = *s.toResponse(&participants[i])
	}
	return responses, nil
}

func (s *ParticipantService) toResponse(participant *models.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:        participant.ID,
		GameName:  participant.GameName,
		CreatedAt: participant.CreatedAt.Format(time.RFC3339),
		UpdatedAt: participant.UpdatedAt.Format(time.RFC3339),
	}
}
