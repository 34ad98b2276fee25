package service

import (
	"match-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ParticipantServiceInterface defines the interface for participant service operations
type ParticipantServiceInterface interface {
	Create(req *UpsertParticipantRequest) (*ParticipantResponse, error)
	Update(id uuid.UUID, req *UpsertParticipantRequest) (*ParticipantResponse, error)
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*ParticipantResponse, error)
	List() ([]ParticipantResponse, error)
}

// MatchServiceInterface defines the interface for match service operations
type MatchServiceInterface interface {
	Create(req *CreateMatchRequest, createdByUsername string) (*MatchResponse, error)
	Update(id uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error)
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*MatchResponse, error)
	List() ([]MatchResponse, error)
	ListBare() ([]models.Match, error)
}
