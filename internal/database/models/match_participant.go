package models

import (
	"github.com/google/uuid"
)

// MatchParticipant binds one participant to one (side, role) slot within one
// match. The (side, role) pair is unique within a match by construction: the
// create-match request supplies exactly one slot per combination.
type MatchParticipant struct {
	BaseModel
	MatchID       uuid.UUID `json:"match_id" gorm:"type:uuid;not null;index" validate:"required"`
	ParticipantID uuid.UUID `json:"participant_id" gorm:"type:uuid;not null;index" validate:"required"`
	Team          TeamSide  `json:"team" gorm:"type:varchar(10);not null" validate:"required"`
	Role          MatchRole `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Champion      string    `json:"champion" gorm:"size:100"`

	// Relationships
	Match       Match       `json:"-" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Participant Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for MatchParticipant
func (MatchParticipant) TableName() string {
	return "match_participants"
}
