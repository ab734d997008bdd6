package analytics

import (
	sdkmath "cosmossdk.io/math"

	"monoblackjack/x/blackjack/types"
)

// Stats aggregates settled rounds. Hand counts are per settled hand, so a
// split round contributes one entry per hand.
type Stats struct {
	Rounds      int
	Hands       int
	Wins        int
	Losses      int
	Pushes      int
	Blackjacks  int
	Surrenders  int
	PlayerBusts int
	Doubles     int
	CardsSeen   int
	Wagered     sdkmath.LegacyDec
	Net         sdkmath.LegacyDec
	Actions     map[Action]int
}

func NewStats() Stats {
	return Stats{
		Wagered: sdkmath.LegacyZeroDec(),
		Net:     sdkmath.LegacyZeroDec(),
		Actions: map[Action]int{},
	}
}

// Add folds one round into s.
func (s *Stats) Add(sum *RoundSummary) {
	s.Rounds++
	s.CardsSeen += len(sum.Cards)
	s.Net = s.Net.Add(sum.Net)
	for _, h := range sum.Hands {
		s.Hands++
		s.Wagered = s.Wagered.Add(h.Bet)
		if h.Busted {
			s.PlayerBusts++
		}
		if h.Doubled {
			s.Doubles++
		}
		switch h.Outcome {
		case types.OutcomeWin:
			s.Wins++
		case types.OutcomeLose:
			s.Losses++
		case types.OutcomePush:
			s.Pushes++
		case types.OutcomeBlackjack:
			s.Blackjacks++
		case types.OutcomeSurrender:
			s.Surrenders++
		}
	}
	for _, d := range sum.Decisions {
		s.Actions[d.Action]++
	}
}

// BustRate is busted hands over settled hands.
func (s Stats) BustRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.PlayerBusts) / float64(s.Hands)
}

// Aggregate reads every stored round.
func Aggregate(store *Store) (Stats, error) {
	s := NewStats()
	err := store.IterateRounds(func(sum *RoundSummary) bool {
		s.Add(sum)
		return false
	})
	return s, err
}
