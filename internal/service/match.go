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

// MatchService handles business logic for matches and their assignments
type MatchService struct {
	repo      repository.MatchRepositoryInterface
	validator *validator.Validate
}

// NewMatchService creates a new match service
func NewMatchService(repo repository.MatchRepositoryInterface, validator *validator.Validate) *MatchService {
	return &MatchService{
		repo:      repo,
		validator: validator,
	}
}

// AssignmentSlot is one named side/role slot of the create-match form.
// Field names on CreateMatchRequest use the dotted keys the admin form
// submits, e.g. "blueTop.participantId".
type AssignmentSlot struct {
	ParticipantID string
	Champion      string
}

// CreateMatchRequest represents the request to create a match with its ten
// fixed assignment slots. Timestamps arrive as strings; empty means absent.
type CreateMatchRequest struct {
	ScheduledAt  string  `json:"scheduledAt" form:"scheduledAt"`
	Status       string  `json:"status" form:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
	StartedAt    string  `json:"startedAt" form:"startedAt"`
	CompletedAt  string  `json:"completedAt" form:"completedAt"`
	WinningTeam  string  `json:"winningTeam" form:"winningTeam" validate:"omitempty,oneof=blue red none"`
	GameDuration *int    `json:"gameDuration" form:"gameDuration" validate:"omitempty,min=0"`
	Notes        *string `json:"notes" form:"notes"`

	// Blue side slots
	BlueTopParticipantID     string `json:"blueTop.participantId" form:"blueTop.participantId" validate:"required,uuid"`
	BlueTopChampion          string `json:"blueTop.champion" form:"blueTop.champion"`
	BlueJungleParticipantID  string `json:"blueJungle.participantId" form:"blueJungle.participantId" validate:"required,uuid"`
	BlueJungleChampion       string `json:"blueJungle.champion" form:"blueJungle.champion"`
	BlueMidParticipantID     string `json:"blueMid.participantId" form:"blueMid.participantId" validate:"required,uuid"`
	BlueMidChampion          string `json:"blueMid.champion" form:"blueMid.champion"`
	BlueBotParticipantID     string `json:"blueBot.participantId" form:"blueBot.participantId" validate:"required,uuid"`
	BlueBotChampion          string `json:"blueBot.champion" form:"blueBot.champion"`
	BlueSupportParticipantID string `json:"blueSupport.participantId" form:"blueSupport.participantId" validate:"required,uuid"`
	BlueSupportChampion      string `json:"blueSupport.champion" form:"blueSupport.champion"`

	// Red side slots
	RedTopParticipantID     string `json:"redTop.participantId" form:"redTop.participantId" validate:"required,uuid"`
	RedTopChampion          string `json:"redTop.champion" form:"redTop.champion"`
	RedJungleParticipantID  string `json:"redJungle.participantId" form:"redJungle.participantId" validate:"required,uuid"`
	RedJungleChampion       string `json:"redJungle.champion" form:"redJungle.champion"`
	RedMidParticipantID     string `json:"redMid.participantId" form:"redMid.participantId" validate:"required,uuid"`
	RedMidChampion          string `json:"redMid.champion" form:"redMid.champion"`
	RedBotParticipantID     string `json:"redBot.participantId" form:"redBot.participantId" validate:"required,uuid"`
	RedBotChampion          string `json:"redBot.champion" form:"redBot.champion"`
	RedSupportParticipantID string `json:"redSupport.participantId" form:"redSupport.participantId" validate:"required,uuid"`
	RedSupportChampion      string `json:"redSupport.champion" form:"redSupport.champion"`
}

// UpdateMatchRequest represents the request to update the scalar fields of a
// match. Assignments are immutable after creation.
type UpdateMatchRequest struct {
	ScheduledAt  string  `json:"scheduledAt" form:"scheduledAt"`
	Status       string  `json:"status" form:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
	StartedAt    string  `json:"startedAt" form:"startedAt"`
	CompletedAt  string  `json:"completedAt" form:"completedAt"`
	WinningTeam  string  `json:"winningTeam" form:"winningTeam" validate:"omitempty,oneof=blue red none"`
	GameDuration *int    `json:"gameDuration" form:"gameDuration" validate:"omitempty,min=0"`
	Notes        *string `json:"notes" form:"notes"`
}

// AssignmentResponse represents one side/role assignment of a match
type AssignmentResponse struct {
	ID            uuid.UUID            `json:"id"`
	ParticipantID uuid.UUID            `json:"participantId"`
	Team          models.TeamSide      `json:"team"`
	Role          models.MatchRole     `json:"role"`
	Champion      string               `json:"champion"`
	Participant   *ParticipantResponse `json:"participant,omitempty"`
}

// MatchResponse represents the response for match operations
type MatchResponse struct {
	ID                uuid.UUID            `json:"id"`
	ScheduledAt       *time.Time           `json:"scheduledAt"`
	Status            models.MatchStatus   `json:"status"`
	StartedAt         *time.Time           `json:"startedAt"`
	CompletedAt       *time.Time           `json:"completedAt"`
	WinningTeam       models.WinningTeam   `json:"winningTeam"`
	GameDuration      *int                 `json:"gameDuration"`
	Notes             string               `json:"notes"`
	CreatedByUsername string               `json:"createdByUsername"`
	Assignments       []AssignmentResponse `json:"assignments,omitempty"`
	CreatedAt         string               `json:"createdAt"`
	UpdatedAt         string               `json:"updatedAt"`
}

// Create validates the request, then writes the match row and its ten
// assignment rows in one repository transaction. The creator name comes from
// the resolved session, never from the payload.
func (s *MatchService) Create(req *CreateMatchRequest, createdByUsername string) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	scheduledAt, err := parseTimestamp("scheduledAt", req.ScheduledAt)
	if err != nil {
		return nil, err
	}
	startedAt, err := parseTimestamp("startedAt", req.StartedAt)
	if err != nil {
		return nil, err
	}
	completedAt, err := parseTimestamp("completedAt", req.CompletedAt)
	if err != nil {
		return nil, err
	}

	match := &models.Match{
		ScheduledAt:       scheduledAt,
		Status:            models.MatchStatus(req.Status),
		StartedAt:         startedAt,
		CompletedAt:       completedAt,
		WinningTeam:       models.WinningTeam(req.WinningTeam),
		GameDuration:      req.GameDuration,
		CreatedByUsername: createdByUsername,
	}
	if req.Notes != nil {
		match.Notes = *req.Notes
	}

	assignments, err := buildAssignments(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateWithAssignments(match, assignments); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	logger.New().Infof("Match %s created by %s", match.ID, createdByUsername)

	match.Participants = assignments
	return s.toResponse(match), nil
}

// Update applies the scalar fields of the request to an existing match
func (s *MatchService) Update(id uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	match, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	scheduledAt, err := parseTimestamp("scheduledAt", req.ScheduledAt)
	if err != nil {
		return nil, err
	}
	startedAt, err := parseTimestamp("startedAt", req.StartedAt)
	if err != nil {
		return nil, err
	}
	completedAt, err := parseTimestamp("completedAt", req.CompletedAt)
	if err != nil {
		return nil, err
	}

	// Empty timestamp input clears the column, matching the admin form
	// semantics where an emptied field means "no longer set".
	updates := map[string]interface{}{
		"scheduled_at": scheduledAt,
		"started_at":   startedAt,
		"completed_at": completedAt,
	}
	if req.Status != "" {
		updates["status"] = models.MatchStatus(req.Status)
	}
	if req.WinningTeam != "" {
		updates["winning_team"] = models.WinningTeam(req.WinningTeam)
	}
	if req.GameDuration != nil {
		updates["game_duration"] = *req.GameDuration
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if err := s.repo.Update(match, updates); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload match: %w", err)
	}
	return s.toResponse(updated), nil
}

// Delete deletes a match by ID. Assignments cascade at the database level.
func (s *MatchService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	logger.New().Infof("Match %s deleted", id)
	return nil
}

// GetByID retrieves a match with its assignments and participants
func (s *MatchService) GetByID(id uuid.UUID) (*MatchResponse, error) {
	match, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return s.toResponse(match), nil
}

// List retrieves all matches with assignments, newest schedule first
func (s *MatchService) List() ([]MatchResponse, error) {
	matches, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = *s.toResponse(&matches[i])
	}
	return responses, nil
}

// ListBare retrieves raw match rows without joins for the public endpoint
func (s *MatchService) ListBare() ([]models.Match, error) {
	matches, err := s.repo.GetAllBare()
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// buildAssignments pairs the ten named slots with their fixed (side, role)
// labels in slot order. An absent champion is stored as an explicit empty
// string rather than omitted.
func buildAssignments(req *CreateMatchRequest) ([]models.MatchParticipant, error) {
	slots := []struct {
		team models.TeamSide
		role models.MatchRole
		slot AssignmentSlot
	}{
		{models.TeamSideBlue, models.MatchRoleTop, AssignmentSlot{req.BlueTopParticipantID, req.BlueTopChampion}},
		{models.TeamSideBlue, models.MatchRoleJungle, AssignmentSlot{req.BlueJungleParticipantID, req.BlueJungleChampion}},
		{models.TeamSideBlue, models.MatchRoleMid, AssignmentSlot{req.BlueMidParticipantID, req.BlueMidChampion}},
		{models.TeamSideBlue, models.MatchRoleBot, AssignmentSlot{req.BlueBotParticipantID, req.BlueBotChampion}},
		{models.TeamSideBlue, models.MatchRoleSupport, AssignmentSlot{req.BlueSupportParticipantID, req.BlueSupportChampion}},
		{models.TeamSideRed, models.MatchRoleTop, AssignmentSlot{req.RedTopParticipantID, req.RedTopChampion}},
		{models.TeamSideRed, models.MatchRoleJungle, AssignmentSlot{req.RedJungleParticipantID, req.RedJungleChampion}},
		{models.TeamSideRed, models.MatchRoleMid, AssignmentSlot{req.RedMidParticipantID, req.RedMidChampion}},
		{models.TeamSideRed, models.MatchRoleBot, AssignmentSlot{req.RedBotParticipantID, req.RedBotChampion}},
		{models.TeamSideRed, models.MatchRoleSupport, AssignmentSlot{req.RedSupportParticipantID, req.RedSupportChampion}},
	}

	assignments := make([]models.MatchParticipant, 0, len(slots))
	for _, s := range slots {
		participantID, err := uuid.Parse(s.slot.ParticipantID)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s%s.participantId", s.team, s.role), "invalid participant ID")
		}
		assignments = append(assignments, models.MatchParticipant{
			ParticipantID: participantID,
			Team:          s.team,
			Role:          s.role,
			Champion:      s.slot.Champion,
		})
	}
	return assignments, nil
}

// parseTimestamp coerces an optional string input to a timestamp. An empty
// string maps to absent, not to an error.
func parseTimestamp(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04", // datetime-local inputs
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.NewValidationError(field, "invalid timestamp")
}

func (s *MatchService) toResponse(match *models.Match) *MatchResponse {
	resp := &MatchResponse{
		ID:                match.ID,
		ScheduledAt:       match.ScheduledAt,
		Status:            match.Status,
		StartedAt:         match.StartedAt,
		CompletedAt:       match.CompletedAt,
		WinningTeam:       match.WinningTeam,
		GameDuration:      match.GameDuration,
		Notes:             match.Notes,
		CreatedByUsername: match.CreatedByUsername,
		CreatedAt:         match.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         match.UpdatedAt.Format(time.RFC3339),
	}

	for i := range match.Participants {
		mp := &match.Participants[i]
		assignment := AssignmentResponse{
			ID:            mp.ID,
			ParticipantID: mp.ParticipantID,
			Team:          mp.Team,
			Role:          mp.Role,
			Champion:      mp.Champion,
		}
		if mp.Participant.ID != uuid.Nil {
			assignment.Participant = &ParticipantResponse{
				ID:        mp.Participant.ID,
				GameName:  mp.Participant.GameName,
				CreatedAt: mp.Participant.CreatedAt.Format(time.RFC3339),
				UpdatedAt: mp.Participant.UpdatedAt.Format(time.RFC3339),
			}
		}
		resp.Assignments = append(resp.Assignments, assignment)
	}

	return resp
}
