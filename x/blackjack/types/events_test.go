package types

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"monoblackjack/internal/cards"
)

func TestEventKeyVals(t *testing.T) {
	e := Event{
		Round:     3,
		Seq:       7,
		Type:      EventTypeCardDealt,
		Who:       Dealer,
		Card:      cards.New(cards.King, cards.Diamonds),
		FaceDown:  true,
		Remaining: 300,
	}
	kv := e.KeyVals()
	require.Equal(t, []any{
		"round", uint64(3), "seq", uint32(7), "type", "CardDealt", "who", "dealer",
		"hand", 0, "card", "Kd", "face_down", true, "remaining", 300,
	}, kv)

	r := Event{Type: EventTypeHandResolved, HandIndex: 1, Outcome: OutcomeWin, Value: 20, Amount: sdkmath.LegacyNewDec(10)}
	require.Equal(t, []any{
		"round", uint64(0), "seq", uint32(0), "type", "HandResolved",
		"hand", 1, "outcome", "win", "value", 20, "amount", "10",
	}, r.KeyVals())
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "player_turn", PhasePlayerTurn.String())
	require.Equal(t, "complete", PhaseComplete.String())
	require.Equal(t, "unknown", Phase(42).String())
}
