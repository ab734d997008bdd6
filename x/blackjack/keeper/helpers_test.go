package keeper

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"monoblackjack/internal/blackjack"
	"monoblackjack/internal/cards"
	"monoblackjack/x/blackjack/types"
)

type eventLog struct {
	events []types.Event
}

func (l *eventLog) sink(e types.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) kinds() []types.EventType {
	out := make([]types.EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

// since returns the event types emitted after the first n events.
func (l *eventLog) since(n int) []types.EventType {
	return l.kinds()[n:]
}

func (l *eventLog) last(t types.EventType) types.Event {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].Type == t {
			return l.events[i]
		}
	}
	return types.Event{}
}

func (l *eventLog) count(t types.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func testRules(t *testing.T, edit func(*types.Params)) types.Rules {
	t.Helper()
	rules, err := types.DefaultRules().With(func(p *types.Params) {
		p.ShuffleMode = types.ShuffleSeeded
		p.ShuffleSeed = 7
		if edit != nil {
			edit(p)
		}
	})
	require.NoError(t, err)
	return rules
}

// newStackedRound builds a round whose shoe deals the given cards first, in
// order: player, dealer up, player, dealer hole, then every later draw.
func newStackedRound(t *testing.T, edit func(*types.Params), bankroll int64, deal ...string) (*Round, *eventLog) {
	t.Helper()
	rules := testRules(t, edit)
	shoe, err := NewShoe(rules)
	require.NoError(t, err)
	shoe.PlaceOnTop(cards.MustParse(deal...)...)

	b, err := types.NewBankroll("player", sdkmath.LegacyNewDec(bankroll))
	require.NoError(t, err)

	log := &eventLog{}
	r, err := NewRound(1, rules, shoe, b, log.sink)
	require.NoError(t, err)
	return r, log
}

func betAndDeal(t *testing.T, r *Round, bet int64) {
	t.Helper()
	require.NoError(t, r.PlaceBet(sdkmath.LegacyNewDec(bet)))
	require.NoError(t, r.Deal())
}

func requireBalance(t *testing.T, r *Round, want string) {
	t.Helper()
	require.Equal(t, want, types.FormatAmount(r.Bankroll().Balance()))
}

func requireResolved(t *testing.T, log *eventLog, hand int, outcome types.Outcome, payout string) {
	t.Helper()
	for _, e := range log.events {
		if e.Type == types.EventTypeHandResolved && e.HandIndex == hand {
			require.Equal(t, outcome, e.Outcome, "hand %d outcome", hand)
			require.Equal(t, payout, types.FormatAmount(e.Amount), "hand %d payout", hand)
			return
		}
	}
	t.Fatalf("no HandResolved for hand %d", hand)
}

func newHand(cs []cards.Card) *blackjack.Hand {
	return blackjack.NewHand(cs...)
}
