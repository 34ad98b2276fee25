package models

// Participant represents a named entrant eligible for match assignments
type Participant struct {
	BaseModel
	GameName string `json:"game_name" gorm:"not null;size:100;index" validate:"required,min=1,max=100"`

	// Relationships
	Assignments []MatchParticipant `json:"assignments,omitempty" gorm:"foreignKey:ParticipantID"`
}

// TableName returns the table name for Participant
func (Participant) TableName() string {
	return "participants"
}
