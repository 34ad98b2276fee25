package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchStatusIsValid(t *testing.T) {
	valid := []MatchStatus{MatchStatusScheduled, MatchStatusInProgress, MatchStatusCompleted, MatchStatusCancelled}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.False(t, MatchStatus("").IsValid())
	assert.False(t, MatchStatus("finished").IsValid())
	assert.False(t, MatchStatus("SCHEDULED").IsValid())
}

func TestTeamSideIsValid(t *testing.T) {
	assert.True(t, TeamSideBlue.IsValid())
	assert.True(t, TeamSideRed.IsValid())
	assert.False(t, TeamSide("").IsValid())
	assert.False(t, TeamSide("green").IsValid())
}

func TestWinningTeamIsValid(t *testing.T) {
	assert.True(t, WinningTeamBlue.IsValid())
	assert.True(t, WinningTeamRed.IsValid())
	assert.True(t, WinningTeamNone.IsValid())
	assert.False(t, WinningTeam("").IsValid())
	assert.False(t, WinningTeam("draw").IsValid())
}

func TestMatchRoleIsValid(t *testing.T) {
	valid := []MatchRole{MatchRoleTop, MatchRoleJungle, MatchRoleMid, MatchRoleBot, MatchRoleSupport}
	for _, r := range valid {
		assert.True(t, r.IsValid(), "expected %q to be valid", r)
	}

	assert.False(t, MatchRole("").IsValid())
	assert.False(t, MatchRole("adc").IsValid())
}

func TestAllTeamSidesOrder(t *testing.T) {
	assert.Equal(t, []TeamSide{TeamSideBlue, TeamSideRed}, AllTeamSides())
}

func TestAllMatchRolesOrder(t *testing.T) {
	assert.Equal(t,
		[]MatchRole{MatchRoleTop, MatchRoleJungle, MatchRoleMid, MatchRoleBot, MatchRoleSupport},
		AllMatchRoles(),
	)
}
