package types

// Phase is the round state machine position.
type Phase uint8

const (
	PhaseBetting Phase = iota
	PhaseDealing
	PhaseInsurance
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseResolution
	PhaseComplete
)

var phaseNames = [...]string{
	PhaseBetting:    "betting",
	PhaseDealing:    "dealing",
	PhaseInsurance:  "insurance",
	PhasePlayerTurn: "player_turn",
	PhaseDealerTurn: "dealer_turn",
	PhaseResolution: "resolution",
	PhaseComplete:   "complete",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}
