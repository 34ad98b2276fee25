package models

import (
	"time"
)

// Match represents one recorded game with schedule and lifecycle metadata.
// Status and WinningTeam carry column defaults so a create request without
// them persists the database default rather than an application value.
// CreatedByUsername is an immutable snapshot of the creating session's
// display name, not a live user reference.
type Match struct {
	BaseModel
	ScheduledAt       *time.Time  `json:"scheduled_at" gorm:"index"`
	Status            MatchStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	StartedAt         *time.Time  `json:"started_at"`
	CompletedAt       *time.Time  `json:"completed_at"`
	WinningTeam       WinningTeam `json:"winning_team" gorm:"type:varchar(10);not null;default:'none'"`
	GameDuration      *int        `json:"game_duration"` // seconds
	Notes             string      `json:"notes" gorm:"type:text"`
	CreatedByUsername string      `json:"created_by_username" gorm:"size:100"`

	// Relationships
	Participants []MatchParticipant `json:"participants,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}
