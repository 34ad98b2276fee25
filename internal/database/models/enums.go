package models

// MatchStatus defines the lifecycle states of a match
type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	MatchStatusCancelled  MatchStatus = "cancelled"
)

// TeamSide defines the two sides of a match
type TeamSide string

const (
	TeamSideBlue TeamSide = "blue"
	TeamSideRed  TeamSide = "red"
)

// WinningTeam defines the possible match outcomes
type WinningTeam string

const (
	WinningTeamBlue WinningTeam = "blue"
	WinningTeamRed  WinningTeam = "red"
	WinningTeamNone WinningTeam = "none"
)

// MatchRole defines the five roles filled on each side of a match
type MatchRole string

const (
	MatchRoleTop     MatchRole = "top"
	MatchRoleJungle  MatchRole = "jungle"
	MatchRoleMid     MatchRole = "mid"
	MatchRoleBot     MatchRole = "bot"
	MatchRoleSupport MatchRole = "support"
)

// AllTeamSides lists both sides in slot order
func AllTeamSides() []TeamSide {
	return []TeamSide{TeamSideBlue, TeamSideRed}
}

// AllMatchRoles lists the five roles in slot order
func AllMatchRoles() []MatchRole {
	return []MatchRole{MatchRoleTop, MatchRoleJungle, MatchRoleMid, MatchRoleBot, MatchRoleSupport}
}

// IsValid checks if the MatchStatus is valid
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusInProgress, MatchStatusCompleted, MatchStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the TeamSide is valid
func (s TeamSide) IsValid() bool {
	switch s {
	case TeamSideBlue, TeamSideRed:
		return true
	}
	return false
}

// IsValid checks if the WinningTeam is valid
func (w WinningTeam) IsValid() bool {
	switch w {
	case WinningTeamBlue, WinningTeamRed, WinningTeamNone:
		return true
	}
	return false
}

// IsValid checks if the MatchRole is valid
func (r MatchRole) IsValid() bool {
	switch r {
	case MatchRoleTop, MatchRoleJungle, MatchRoleMid, MatchRoleBot, MatchRoleSupport:
		return true
	}
	return false
}
