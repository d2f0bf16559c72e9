package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPosition(t *testing.T) {
	assert.True(t, ValidPosition(PositionForward))
	assert.True(t, ValidPosition(PositionDefence))
	assert.True(t, ValidPosition(PositionGoalie))

	assert.False(t, ValidPosition("forward"))
	assert.False(t, ValidPosition("Defense"))
	assert.False(t, ValidPosition(""))
}

func TestValidLocation(t *testing.T) {
	assert.True(t, ValidLocation(LocationHome))
	assert.True(t, ValidLocation(LocationAway))
	assert.True(t, ValidLocation(LocationTournament))

	assert.False(t, ValidLocation("home"))
	assert.False(t, ValidLocation("Neutral"))
	assert.False(t, ValidLocation(""))
}

func TestValidateAssignment(t *testing.T) {
	assert.NoError(t, validateAssignment(1, PositionForward))
	assert.NoError(t, validateAssignment(99, PositionGoalie))

	err := validateAssignment(0, PositionForward)
	require.Error(t, err)
	assert.Equal(t, "Jersey number must be a positive integer", err.Error())

	err = validateAssignment(-7, PositionForward)
	require.Error(t, err)
	assert.Equal(t, "Jersey number must be a positive integer", err.Error())

	err = validateAssignment(10, "Winger")
	require.Error(t, err)
	assert.Equal(t, "Position must be 'Forward', 'Defence', or 'Goalie'", err.Error())
	assert.True(t, IsValidation(err))
}

func validParams() GameParams {
	return GameParams{
		TeamID:         1,
		GameDate:       time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
		Location:       LocationHome,
		GameTypeName:   "League",
		OpponentName:   "Lethbridge Storm",
		GoalsFor:       4,
		GoalsAgainst:   2,
		Period1Minutes: 15,
		Period2Minutes: 15,
		Period3Minutes: 15,
	}
}

func TestGameParamsValidate(t *testing.T) {
	p := validParams()
	assert.NoError(t, p.validate())

	p = validParams()
	p.Location = "Neutral"
	err := p.validate()
	require.Error(t, err)
	assert.Equal(t, "Location must be 'Home', 'Away', or 'Tournament'", err.Error())

	p = validParams()
	p.GoalsAgainst = -1
	err = p.validate()
	require.Error(t, err)
	assert.Equal(t, "Goals must be non-negative integers", err.Error())

	p = validParams()
	p.OvertimeMinutes = -5
	err = p.validate()
	require.Error(t, err)
	assert.Equal(t, "Period lengths must be non-negative integers", err.Error())

	// Zero-length periods are allowed; a scheduled game has no scores yet.
	p = validParams()
	p.Period1Minutes, p.Period2Minutes, p.Period3Minutes = 0, 0, 0
	p.GoalsFor, p.GoalsAgainst = 0, 0
	assert.NoError(t, p.validate())
}

func TestStatCountersValidate(t *testing.T) {
	c := StatCounters{GamesPlayed: 20, Goals: 18, Assists: 12, MinutesPlayed: 900}
	assert.NoError(t, c.validate())

	assert.NoError(t, (&StatCounters{}).validate())

	for _, bad := range []StatCounters{
		{GamesPlayed: -1},
		{Goals: -1},
		{Assists: -1},
		{YellowCards: -1},
		{RedCards: -1},
		{MinutesPlayed: -1},
	} {
		err := bad.validate()
		require.Error(t, err)
		assert.Equal(t, "Stat counters must be non-negative integers", err.Error())
	}
}
