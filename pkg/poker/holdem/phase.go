package holdem

import "encoding/json"

// Phase represents where the hand is in its fixed forward-only sequence
type Phase int

// constants for Phase
const (
	PhasePreFlop Phase = iota
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
)

func (p Phase) String() string {
	switch p {
	case PhasePreFlop:
		return "preflop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	}

	return ""
}

// communityCardCount is the number of community cards dealt entering the phase
func (p Phase) communityCardCount() int {
	switch p {
	case PhaseFlop:
		return 3
	case PhaseTurn, PhaseRiver:
		return 1
	}

	return 0
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}

// UnmarshalJSON decodes either the object form or a bare integer
func (p *Phase) UnmarshalJSON(data []byte) error {
	var obj struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*p = Phase(obj.ID)
		return nil
	}

	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}

	*p = Phase(id)
	return nil
}
