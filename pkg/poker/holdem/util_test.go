package holdem

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"headsupholdem-server/internal/rng"
)

func setupPlayers(chips ...int) []*Player {
	players := make([]*Player, len(chips))
	for i, c := range chips {
		players[i] = &Player{
			ID:        int64(i + 1),
			Name:      fmt.Sprintf("player %d", i+1),
			Chips:     c,
			Connected: true,
		}
	}

	return players
}

func setupHand(t *testing.T, chips ...int) *GameState {
	t.Helper()

	state, err := StartHand(logrus.StandardLogger(), setupPlayers(chips...), -1, DefaultOptions(), rng.Seeded(1))
	require.NoError(t, err)
	require.NotNil(t, state)

	return state
}

// totalChips is the conservation quantity: it must equal the hand's total
// starting chip count at every state
func totalChips(state *GameState) int {
	total := state.Pot
	for _, p := range state.Players {
		total += p.Chips + p.CurrentBet
	}

	return total
}

func assertApply(t *testing.T, state *GameState, playerID int64, act Action, amount int, msgAndArgs ...interface{}) *GameState {
	t.Helper()

	before := totalChips(state)
	next, err := ApplyAction(state, playerID, act, amount)
	require.NoError(t, err, msgAndArgs...)
	require.NotNil(t, next, msgAndArgs...)
	assert.Equal(t, before, totalChips(next), msgAndArgs...)
	assert.GreaterOrEqual(t, int(next.Phase), int(state.Phase), msgAndArgs...)

	return next
}

func assertApplyFailed(t *testing.T, state *GameState, playerID int64, act Action, amount int, wantErr error) {
	t.Helper()

	next, err := ApplyAction(state, playerID, act, amount)
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, next)
}

// assertTurn verifies turn exclusivity: the given seat is the one actor and
// that actor can act
func assertTurn(t *testing.T, state *GameState, playerID int64) {
	t.Helper()

	current := state.CurrentPlayer()
	require.NotNil(t, current)
	assert.Equal(t, playerID, current.ID)
	assert.True(t, current.CanAct())
}
