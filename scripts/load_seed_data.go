package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"match-tracker-backend/internal/config"
	"match-tracker-backend/internal/database"
	"match-tracker-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ParticipantData struct {
	GameName string `yaml:"game_name"`
}

type AssignmentData struct {
	ParticipantName string `yaml:"participant_name"`
	Team            string `yaml:"team"`
	Role            string `yaml:"role"`
	Champion        string `yaml:"champion,omitempty"`
}

type MatchData struct {
	ScheduledAt       string           `yaml:"scheduled_at,omitempty"`
	Status            string           `yaml:"status,omitempty"`
	StartedAt         string           `yaml:"started_at,omitempty"`
	CompletedAt       string           `yaml:"completed_at,omitempty"`
	WinningTeam       string           `yaml:"winning_team,omitempty"`
	GameDuration      *int             `yaml:"game_duration,omitempty"`
	Notes             string           `yaml:"notes,omitempty"`
	CreatedByUsername string           `yaml:"created_by_username"`
	Assignments       []AssignmentData `yaml:"assignments"`
}

// File structures
type ParticipantsFile struct {
	Participants []ParticipantData `yaml:"participants"`
}

type MatchesFile struct {
	Matches []MatchData `yaml:"matches"`
}

func main() {
	log.Println("Loading seed data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Seed data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	participants, err := loadParticipants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}

	matches, err := loadMatches(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	// Create participants first; matches reference them by game name
	participantMap := make(map[string]*models.Participant)
	participantCreated := 0
	for _, participantData := range participants {
		participant, created, err := createParticipant(db, participantData)
		if err != nil {
			return fmt.Errorf("failed to create participant %s: %w", participantData.GameName, err)
		}
		participantMap[participantData.GameName] = participant
		if created {
			participantCreated++
		}
	}
	log.Printf("Participants: %d created, %d total", participantCreated, len(participants))

	matchCreated := 0
	for i, matchData := range matches {
		created, err := createMatch(db, matchData, participantMap)
		if err != nil {
			log.Printf("Warning: failed to create match %d: %v", i+1, err)
			continue
		}
		if created {
			matchCreated++
		}
	}
	log.Printf("Matches: %d created, %d total", matchCreated, len(matches))

	return nil
}

func loadParticipants(dataDir string) ([]ParticipantData, error) {
	var file ParticipantsFile
	if err := readYAMLFile(filepath.Join(dataDir, "participants.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Participants, nil
}

func loadMatches(dataDir string) ([]MatchData, error) {
	var file MatchesFile
	if err := readYAMLFile(filepath.Join(dataDir, "matches.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Matches, nil
}

func readYAMLFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func createParticipant(db *gorm.DB, data ParticipantData) (*models.Participant, bool, error) {
	var existing models.Participant
	err := db.Where("game_name = ?", data.GameName).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	participant := &models.Participant{
		GameName: data.GameName,
	}
	if err := db.Create(participant).Error; err != nil {
		return nil, false, err
	}
	return participant, true, nil
}

func createMatch(db *gorm.DB, data MatchData, participantMap map[string]*models.Participant) (bool, error) {
	if len(data.Assignments) != 10 {
		return false, fmt.Errorf("match requires exactly 10 assignments, got %d", len(data.Assignments))
	}

	scheduledAt, err := parseOptionalTime(data.ScheduledAt)
	if err != nil {
		return false, fmt.Errorf("invalid scheduled_at: %w", err)
	}
	startedAt, err := parseOptionalTime(data.StartedAt)
	if err != nil {
		return false, fmt.Errorf("invalid started_at: %w", err)
	}
	completedAt, err := parseOptionalTime(data.CompletedAt)
	if err != nil {
		return false, fmt.Errorf("invalid completed_at: %w", err)
	}

	match := &models.Match{
		ScheduledAt:       scheduledAt,
		Status:            models.MatchStatus(data.Status),
		StartedAt:         startedAt,
		CompletedAt:       completedAt,
		WinningTeam:       models.WinningTeam(data.WinningTeam),
		GameDuration:      data.GameDuration,
		Notes:             data.Notes,
		CreatedByUsername: data.CreatedByUsername,
	}

	assignments := make([]models.MatchParticipant, 0, len(data.Assignments))
	for _, assignmentData := range data.Assignments {
		participant, ok := participantMap[assignmentData.ParticipantName]
		if !ok {
			return false, fmt.Errorf("unknown participant %q", assignmentData.ParticipantName)
		}

		team := models.TeamSide(assignmentData.Team)
		if !team.IsValid() {
			return false, fmt.Errorf("invalid team %q", assignmentData.Team)
		}
		role := models.MatchRole(assignmentData.Role)
		if !role.IsValid() {
			return false, fmt.Errorf("invalid role %q", assignmentData.Role)
		}

		assignments = append(assignments, models.MatchParticipant{
			ParticipantID: participant.ID,
			Team:          team,
			Role:          role,
			Champion:      assignmentData.Champion,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(match).Error; err != nil {
			return err
		}
		for i := range assignments {
			assignments[i].MatchID = match.ID
		}
		return tx.Create(&assignments).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
