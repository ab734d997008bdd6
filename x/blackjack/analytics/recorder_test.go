package analytics

import (
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"monoblackjack/internal/cards"
	"monoblackjack/x/blackjack/keeper"
	"monoblackjack/x/blackjack/types"
)

type table struct {
	k   *keeper.Keeper
	rec *Recorder
}

func newTable(t *testing.T, store *Store) *table {
	t.Helper()
	rules, err := types.DefaultRules().With(func(p *types.Params) {
		p.ShuffleMode = types.ShuffleSeeded
		p.ShuffleSeed = 11
	})
	require.NoError(t, err)
	k, err := keeper.NewKeeper(rules, nil, nil)
	require.NoError(t, err)
	rec := NewRecorder(store, nil)
	k.Subscribe(rec.Observe)
	return &table{k: k, rec: rec}
}

// play deals the stacked cards, applies each action in turn and finishes the
// round.
func (tb *table) play(t *testing.T, bet int64, deal []string, actions ...func(*keeper.Round) error) *keeper.Round {
	t.Helper()
	r, err := tb.k.NewRound()
	require.NoError(t, err)
	tb.k.Shoe().PlaceOnTop(cards.MustParse(deal...)...)
	require.NoError(t, r.PlaceBet(sdkmath.LegacyNewDec(bet)))
	require.NoError(t, r.Deal())
	for _, act := range actions {
		require.NoError(t, act(r))
	}
	require.True(t, r.Done())
	require.NoError(t, tb.k.FinishRound(r))
	return r
}

var (
	hit    = (*keeper.Round).Hit
	stand  = (*keeper.Round).Stand
	split  = (*keeper.Round).Split
	insure = (*keeper.Round).PlaceInsurance
)

func TestRecorderSummarisesRound(t *testing.T) {
	store := NewMemStore()
	tb := newTable(t, store)
	tb.play(t, 10, []string{"Td", "6s", "7c", "Kd", "5h"}, stand)

	require.NoError(t, tb.rec.Err())
	require.Equal(t, 1, tb.rec.Saved())
	sum := tb.rec.Last()
	require.NotNil(t, sum)
	require.Equal(t, uint64(1), sum.Round)
	require.Equal(t, "10", types.FormatAmount(sum.Bet))
	require.Equal(t, "-10", types.FormatAmount(sum.Net))
	require.Equal(t, "6s", sum.DealerUp)
	require.Equal(t, 21, sum.Dealer)

	require.Len(t, sum.Cards, 5)
	hole := sum.Cards[3]
	require.Equal(t, "Kd", hole.Card)
	require.Equal(t, types.Dealer, hole.Who)
	require.True(t, hole.FaceDown)
	require.True(t, hole.Revealed)
	require.Equal(t, types.Dealer, sum.Cards[4].Who)

	require.Equal(t, []Decision{{
		Hand: 0, Value: 17, DealerUp: "6s", Action: ActionStand, Outcome: types.OutcomeLose,
	}}, sum.Decisions)

	require.Len(t, sum.Hands, 1)
	require.Equal(t, types.OutcomeLose, sum.Hands[0].Outcome)
	require.False(t, sum.Hands[0].Busted)

	stored, err := store.GetRound(1)
	require.NoError(t, err)
	require.Equal(t, sum.Decisions, stored.Decisions)
	require.Equal(t, sum.Cards, stored.Cards)
	require.True(t, sum.Net.Equal(stored.Net))
	last, err := store.LastRoundID()
	require.NoError(t, err)
	require.Equal(t, uint64(1), last)
}

func TestRecorderCountsHoleCardOnce(t *testing.T) {
	tb := newTable(t, nil)
	// Natural against a six: the round ends with the hole card revealed at
	// resolution and no dealer draws.
	tb.play(t, 10, []string{"As", "6s", "Kh", "9c"})

	sum := tb.rec.Last()
	require.Len(t, sum.Cards, 4)
	dealer := 0
	for _, c := range sum.Cards {
		if c.Who == types.Dealer {
			dealer++
		}
	}
	require.Equal(t, 2, dealer)
	require.True(t, sum.Cards[3].Revealed)
	require.Equal(t, types.OutcomeBlackjack, sum.Hands[0].Outcome)
	require.Empty(t, sum.Decisions)
}

func TestRecorderSplitAndBusts(t *testing.T) {
	store := NewMemStore()
	tb := newTable(t, store)

	// Split eights, bust the first hand, stand the second; the dealer pushes
	// the second at 18.
	tb.play(t, 10, []string{"8c", "6s", "8d", "Kd", "Th", "Tc", "9h", "2c"}, split, hit, stand)
	sum := tb.rec.Last()
	require.Equal(t, "20", types.FormatAmount(sum.Bet))
	require.Len(t, sum.Hands, 2)
	require.True(t, sum.Hands[0].Busted)
	require.Equal(t, types.OutcomeLose, sum.Hands[0].Outcome)
	require.False(t, sum.Hands[1].Busted)
	require.Equal(t, types.OutcomePush, sum.Hands[1].Outcome)
	require.Equal(t, "10", types.FormatAmount(sum.Hands[1].Bet))

	require.Equal(t, []Action{ActionSplit, ActionHit, ActionStand}, actionsOf(sum))
	require.Equal(t, 16, sum.Decisions[0].Value)
	require.Equal(t, types.OutcomeLose, sum.Decisions[0].Outcome)
	require.Equal(t, 18, sum.Decisions[1].Value)
	require.Equal(t, 1, sum.Decisions[2].Hand)
	require.Equal(t, types.OutcomePush, sum.Decisions[2].Outcome)

	// A single-hand bust.
	tb.play(t, 10, []string{"Td", "6s", "6c", "Kd", "9h"}, hit)

	stats, err := Aggregate(store)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Rounds)
	require.Equal(t, 3, stats.Hands)
	require.Equal(t, 2, stats.PlayerBusts)
	require.Equal(t, 2, stats.Losses)
	require.Equal(t, 1, stats.Pushes)
	require.InDelta(t, 2.0/3.0, stats.BustRate(), 1e-9)
	require.Equal(t, "-20", types.FormatAmount(stats.Net))
	require.Equal(t, "30", types.FormatAmount(stats.Wagered))
	require.Equal(t, 2, stats.Actions[ActionHit])
}

func TestRecorderInsurance(t *testing.T) {
	tb := newTable(t, nil)
	tb.play(t, 10, []string{"Tc", "As", "9d", "Kh"}, insure)

	sum := tb.rec.Last()
	require.Equal(t, "10", types.FormatAmount(sum.Insurance))
	require.Equal(t, "0", types.FormatAmount(sum.Net))
	require.Equal(t, []Action{ActionInsure}, actionsOf(sum))
	require.Equal(t, "As", sum.Decisions[0].DealerUp)
	require.Equal(t, types.OutcomeLose, sum.Decisions[0].Outcome)
}

func TestRecorderIgnoresPartialRounds(t *testing.T) {
	rec := NewRecorder(nil, nil)
	rec.Observe(types.Event{Round: 4, Type: types.EventTypeCardDealt, Who: types.Player})
	rec.Observe(types.Event{Round: 4, Type: types.EventTypeRoundComplete, Amount: sdkmath.LegacyNewDec(5)})
	require.Nil(t, rec.Last())
	require.NoError(t, rec.Err())
}

type failingBatch struct {
	dbm.Batch
}

func (failingBatch) WriteSync() error { return errors.New("disk full") }

type failingDB struct {
	dbm.DB
}

func (d failingDB) NewBatch() dbm.Batch { return failingBatch{d.DB.NewBatch()} }

func TestRecorderKeepsWriteFailures(t *testing.T) {
	tb := newTable(t, NewStore(failingDB{dbm.NewMemDB()}))
	r := tb.play(t, 10, []string{"Td", "6s", "7c", "Kd", "5h"}, stand)

	require.ErrorContains(t, tb.rec.Err(), "disk full")
	require.Equal(t, 0, tb.rec.Saved())
	require.NotNil(t, tb.rec.Last())
	require.Equal(t, "990", types.FormatAmount(r.Bankroll().Balance()))
}

func actionsOf(sum *RoundSummary) []Action {
	out := make([]Action, len(sum.Decisions))
	for i, d := range sum.Decisions {
		out[i] = d.Action
	}
	return out
}
