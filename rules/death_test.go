package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeathCauseWallCollision(t *testing.T) {
	points := []Point{
		{X: -1, Y: 1},
		{X: 20, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 20},
	}
	for _, p := range points {
		death := checkForDeath(20, 20, 3, []Point{p})
		require.NotNil(t, death, p.String())
		require.Equal(t, DeathCauseWallCollision, death.Cause)
		require.Equal(t, 3, death.Turn)
	}
}

func TestDeathCauseSnakeSelfCollision(t *testing.T) {
	death := checkForDeath(20, 20, 7, []Point{
		{X: 5, Y: 5},
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6},
		{X: 5, Y: 5},
	})
	require.NotNil(t, death)
	require.Equal(t, DeathCauseSnakeSelfCollision, death.Cause)
	require.Equal(t, 7, death.Turn)
}

func TestNoDeath(t *testing.T) {
	require.Nil(t, checkForDeath(20, 20, 1, []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 19, Y: 19},
	}))
	require.Nil(t, checkForDeath(20, 20, 1, []Point{{X: 19, Y: 19}}))
	require.Nil(t, checkForDeath(20, 20, 1, nil))
}

func TestBodyOutsideBoardIsNotAWallCollision(t *testing.T) {
	// only the head is checked against the walls
	require.Nil(t, checkForDeath(20, 20, 1, []Point{
		{X: 0, Y: 5},
		{X: -1, Y: 5},
	}))
}
