package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromString(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"fold", "check", "call", "raise", "allin"} {
		act, err := ActionFromString(s)
		a.NoError(err)
		a.True(act.IsValid())
		a.Equal(s, string(act))
	}

	_, err := ActionFromString("bet")
	a.EqualError(err, "unknown action for identifier: bet")
}

func TestAction_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("Fold", ActionFold.String())
	a.Equal("Check", ActionCheck.String())
	a.Equal("Call", ActionCall.String())
	a.Equal("Raise", ActionRaise.String())
	a.Equal("All-in", ActionAllIn.String())
}

func TestAction_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(ActionAllIn)
	a.NoError(err)
	a.JSONEq(`{"id":"allin","name":"All-in"}`, string(b))

	var act Action
	a.NoError(json.Unmarshal(b, &act))
	a.Equal(ActionAllIn, act)

	a.NoError(json.Unmarshal([]byte(`"raise"`), &act))
	a.Equal(ActionRaise, act)

	a.Error(json.Unmarshal([]byte(`"bet"`), &act))
}

func TestPhase_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(PhaseTurn)
	a.NoError(err)
	a.JSONEq(`{"id":2,"name":"turn"}`, string(b))

	var p Phase
	a.NoError(json.Unmarshal(b, &p))
	a.Equal(PhaseTurn, p)

	a.NoError(json.Unmarshal([]byte(`4`), &p))
	a.Equal(PhaseShowdown, p)
}

func TestPhase_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("preflop", PhasePreFlop.String())
	a.Equal("flop", PhaseFlop.String())
	a.Equal("turn", PhaseTurn.String())
	a.Equal("river", PhaseRiver.String())
	a.Equal("showdown", PhaseShowdown.String())
}

func TestPhase_forwardOnly(t *testing.T) {
	a := assert.New(t)

	// the phase sequence is fixed and strictly ordered
	a.Less(int(PhasePreFlop), int(PhaseFlop))
	a.Less(int(PhaseFlop), int(PhaseTurn))
	a.Less(int(PhaseTurn), int(PhaseRiver))
	a.Less(int(PhaseRiver), int(PhaseShowdown))
}
