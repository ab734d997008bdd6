package types

import (
	sdkmath "cosmossdk.io/math"

	"monoblackjack/internal/cards"
)

// EventType names one kind of round notification.
type EventType string

const (
	EventTypeShoeReshuffled      EventType = "ShoeReshuffled"
	EventTypeBetPlaced           EventType = "BetPlaced"
	EventTypeCardDealt           EventType = "CardDealt"
	EventTypeInitialDealComplete EventType = "InitialDealComplete"
	EventTypeBlackjackDetected   EventType = "BlackjackDetected"

	EventTypeInsuranceOffered  EventType = "InsuranceOffered"
	EventTypeInsurancePlaced   EventType = "InsurancePlaced"
	EventTypeInsuranceDeclined EventType = "InsuranceDeclined"
	EventTypeInsuranceResult   EventType = "InsuranceResult"
	EventTypeDealerPeeked      EventType = "DealerPeeked"

	EventTypePlayerTurnStarted EventType = "PlayerTurnStarted"
	EventTypePlayerHit         EventType = "PlayerHit"
	EventTypePlayerStood       EventType = "PlayerStood"
	EventTypePlayerBusted      EventType = "PlayerBusted"
	EventTypePlayerDoubled     EventType = "PlayerDoubled"
	EventTypePlayerSplit       EventType = "PlayerSplit"
	EventTypePlayerSurrendered EventType = "PlayerSurrendered"

	EventTypeDealerTurnStarted EventType = "DealerTurnStarted"
	EventTypeDealerHit         EventType = "DealerHit"
	EventTypeHoleCardRevealed  EventType = "HoleCardRevealed"
	EventTypeDealerBusted      EventType = "DealerBusted"
	EventTypeDealerStood       EventType = "DealerStood"

	EventTypeHandResolved  EventType = "HandResolved"
	EventTypeRoundComplete EventType = "RoundComplete"
)

// Participant identifies who a card or detection belongs to.
type Participant string

const (
	Player Participant = "player"
	Dealer Participant = "dealer"
)

// Outcome is the settled result of one player hand.
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLose      Outcome = "lose"
	OutcomePush      Outcome = "push"
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeSurrender Outcome = "surrender"
)

// Event is one ordered notification from a round. Only the fields relevant
// to Type are set:
//
//   - CardDealt: Who, HandIndex (player), Card, FaceDown, Remaining
//   - BetPlaced, InsuranceOffered/Placed: Amount
//   - InsuranceResult: Amount (signed), Blackjack (dealer had one)
//   - DealerPeeked: Blackjack
//   - PlayerHit, DealerHit: Value/Soft before the draw
//   - PlayerDoubled: Amount (new bet)
//   - PlayerSplit: HandIndex (from), SplitIndex (new hand), Card (moved),
//     Value/Soft of the pair, Amount (new hand's bet)
//   - PlayerBusted, PlayerStood, DealerBusted, DealerStood: Value
//   - HoleCardRevealed: Card
//   - HandResolved: HandIndex, Outcome, Amount (signed payout), Value
//   - RoundComplete: Amount (net)
type Event struct {
	Round      uint64
	Seq        uint32
	Type       EventType
	Who        Participant
	HandIndex  int
	SplitIndex int
	Card       cards.Card
	FaceDown   bool
	Value      int
	Soft       bool
	Amount     sdkmath.LegacyDec
	Outcome    Outcome
	Blackjack  bool
	Remaining  int
}

// KeyVals flattens the populated fields for structured loggers.
func (e Event) KeyVals() []any {
	kv := []any{"round", e.Round, "seq", e.Seq, "type", string(e.Type)}
	if e.Who != "" {
		kv = append(kv, "who", string(e.Who))
	}
	switch e.Type {
	case EventTypeCardDealt:
		kv = append(kv, "hand", e.HandIndex, "card", e.Card.String(), "face_down", e.FaceDown, "remaining", e.Remaining)
	case EventTypeHoleCardRevealed:
		kv = append(kv, "card", e.Card.String())
	case EventTypePlayerSplit:
		kv = append(kv, "hand", e.HandIndex, "new_hand", e.SplitIndex, "card", e.Card.String())
	case EventTypePlayerTurnStarted, EventTypePlayerHit, EventTypePlayerStood,
		EventTypePlayerBusted, EventTypePlayerDoubled, EventTypePlayerSurrendered:
		kv = append(kv, "hand", e.HandIndex, "value", e.Value, "soft", e.Soft)
	case EventTypeDealerHit, EventTypeDealerBusted, EventTypeDealerStood:
		kv = append(kv, "value", e.Value, "soft", e.Soft)
	case EventTypeDealerPeeked, EventTypeInsuranceResult:
		kv = append(kv, "dealer_blackjack", e.Blackjack)
	case EventTypeHandResolved:
		kv = append(kv, "hand", e.HandIndex, "outcome", string(e.Outcome), "value", e.Value)
	}
	if !e.Amount.IsNil() {
		kv = append(kv, "amount", FormatAmount(e.Amount))
	}
	return kv
}

// EventSink receives round events synchronously, in order.
type EventSink func(Event)
