package analytics

import (
	sdkmath "cosmossdk.io/math"

	"monoblackjack/x/blackjack/types"
)

// RoundSummary is everything the recorder derives from one round's events.
type RoundSummary struct {
	Round      uint64            `json:"round"`
	Bet        sdkmath.LegacyDec `json:"bet"`
	Insurance  sdkmath.LegacyDec `json:"insurance"`
	Net        sdkmath.LegacyDec `json:"net"`
	Reshuffled bool              `json:"reshuffled,omitempty"`
	DealerUp   string            `json:"dealer_up"`
	Dealer     int               `json:"dealer_total"`
	Hands      []HandSummary     `json:"hands"`
	Cards      []CardSeen        `json:"cards"`
	Decisions  []Decision        `json:"decisions"`
}

// HandSummary is the settled state of one player hand.
type HandSummary struct {
	Index   int               `json:"index"`
	Bet     sdkmath.LegacyDec `json:"bet"`
	Value   int               `json:"value"`
	Outcome types.Outcome     `json:"outcome"`
	Payout  sdkmath.LegacyDec `json:"payout"`
	Doubled bool              `json:"doubled,omitempty"`
	Busted  bool              `json:"busted,omitempty"`
}

// CardSeen is one card that left the shoe. The hole card is recorded once,
// face down, and marked Revealed when it is turned over.
type CardSeen struct {
	Card     string            `json:"card"`
	Who      types.Participant `json:"who"`
	Hand     int               `json:"hand"`
	FaceDown bool              `json:"face_down,omitempty"`
	Revealed bool              `json:"revealed,omitempty"`
}

type Action string

const (
	ActionHit       Action = "hit"
	ActionStand     Action = "stand"
	ActionDouble    Action = "double"
	ActionSplit     Action = "split"
	ActionSurrender Action = "surrender"
	ActionInsure    Action = "insure"
	ActionNoInsure  Action = "no_insurance"
)

// Decision is one player choice with the context it was made in. Outcome is
// filled in when the hand settles.
type Decision struct {
	Hand     int           `json:"hand"`
	Value    int           `json:"value"`
	Soft     bool          `json:"soft"`
	DealerUp string        `json:"dealer_up"`
	Action   Action        `json:"action"`
	Outcome  types.Outcome `json:"outcome,omitempty"`
}
