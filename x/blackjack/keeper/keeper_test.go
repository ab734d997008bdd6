package keeper

import (
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"monoblackjack/internal/cards"
	"monoblackjack/x/blackjack/types"
)

func newTestKeeper(t *testing.T, edit func(*types.Params)) *Keeper {
	t.Helper()
	k, err := NewKeeper(testRules(t, edit), nil, log.NewTestLogger(t))
	require.NoError(t, err)
	return k
}

func playStandingRound(t *testing.T, k *Keeper) *Round {
	t.Helper()
	r, err := k.NewRound()
	require.NoError(t, err)
	k.Shoe().PlaceOnTop(cards.MustParse("Td", "6s", "7c", "Kd", "5h")...)
	betAndDeal(t, r, 10)
	require.NoError(t, r.Stand())
	return r
}

func TestNewKeeperDefaults(t *testing.T) {
	k := newTestKeeper(t, nil)
	require.Equal(t, "1000", types.FormatAmount(k.Bankroll().Balance()))
	require.Equal(t, 6*cards.DeckSize, k.Shoe().Remaining())
	require.Equal(t, uint64(0), k.LastRoundID())

	_, err := NewKeeper(types.Rules{}, nil, nil)
	require.ErrorIs(t, err, types.ErrInvalidRules)
}

func TestKeeperUsesGivenBankroll(t *testing.T) {
	b, err := types.NewBankroll("alice", sdkmath.LegacyNewDec(42))
	require.NoError(t, err)
	k, err := NewKeeper(testRules(t, nil), b, nil)
	require.NoError(t, err)
	require.Same(t, b, k.Bankroll())
}

func TestSeededShoesAreReproducible(t *testing.T) {
	a, err := NewShoe(testRules(t, nil))
	require.NoError(t, err)
	b, err := NewShoe(testRules(t, nil))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Draw(), b.Draw())
	}
}

func TestKeeperRoundLifecycle(t *testing.T) {
	k := newTestKeeper(t, nil)

	var seen []types.Event
	k.Subscribe(func(e types.Event) { seen = append(seen, e) })

	r, err := k.NewRound()
	require.NoError(t, err)
	require.Equal(t, uint64(1), r.ID())
	require.Same(t, r, k.ActiveRound())

	_, err = k.NewRound()
	require.ErrorIs(t, err, types.ErrRoundInProgress)
	require.ErrorIs(t, k.FinishRound(r), types.ErrWrongPhase)
	require.ErrorIs(t, k.SetRules(types.DefaultRules()), types.ErrRoundInProgress)

	k.Shoe().PlaceOnTop(cards.MustParse("Td", "6s", "7c", "Kd", "5h")...)
	betAndDeal(t, r, 10)
	require.NoError(t, r.Stand())
	require.NoError(t, k.FinishRound(r))
	require.Nil(t, k.ActiveRound())
	require.Len(t, seen, 15)
	require.Equal(t, "990", types.FormatAmount(k.Bankroll().Balance()))

	next := playStandingRound(t, k)
	require.Equal(t, uint64(2), next.ID())
	require.Equal(t, uint64(2), seen[len(seen)-1].Round)
	require.NoError(t, k.FinishRound(next))
	require.Equal(t, "980", types.FormatAmount(k.Bankroll().Balance()))

	require.ErrorIs(t, k.FinishRound(r), types.ErrInvalidRequest)
}

func TestKeeperSurfacesSinkFailure(t *testing.T) {
	k := newTestKeeper(t, nil)
	k.Subscribe(func(e types.Event) {
		if e.Type == types.EventTypeRoundComplete {
			panic("disk full")
		}
	})
	r := playStandingRound(t, k)
	err := k.FinishRound(r)
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")

	// The next round still opens.
	_, err = k.NewRound()
	require.NoError(t, err)
}

func TestSetRulesRebuildsShoeOnlyWhenShapeChanges(t *testing.T) {
	k := newTestKeeper(t, nil)
	shoe := k.Shoe()

	limits, err := k.Rules().With(func(p *types.Params) { p.MaximumBet = sdkmath.LegacyNewDec(100) })
	require.NoError(t, err)
	require.NoError(t, k.SetRules(limits))
	require.Same(t, shoe, k.Shoe())
	require.True(t, k.Rules().MaximumBet().Equal(sdkmath.LegacyNewDec(100)))

	single, err := k.Rules().With(func(p *types.Params) { p.DeckCount = 1 })
	require.NoError(t, err)
	require.NoError(t, k.SetRules(single))
	require.NotSame(t, shoe, k.Shoe())
	require.Equal(t, cards.DeckSize, k.Shoe().Remaining())

	require.ErrorIs(t, k.SetRules(types.Rules{}), types.ErrInvalidRules)
}

func TestKeeperRoundsFollowNewRules(t *testing.T) {
	k := newTestKeeper(t, nil)
	free, err := k.Rules().With(func(p *types.Params) { p.PlayMode = types.PlayFree })
	require.NoError(t, err)
	require.NoError(t, k.SetRules(free))

	r, err := k.NewRound()
	require.NoError(t, err)
	require.ErrorIs(t, r.PlaceBet(sdkmath.LegacyNewDec(10)), types.ErrInvalidAmount)
	require.NoError(t, r.PlaceBet(sdkmath.LegacyZeroDec()))
}

func TestSetLastRoundIDContinuesNumbering(t *testing.T) {
	k := newTestKeeper(t, nil)
	require.NoError(t, k.SetLastRoundID(41))

	r := playStandingRound(t, k)
	require.Equal(t, uint64(42), r.ID())
	require.NoError(t, k.FinishRound(r))

	r, err := k.NewRound()
	require.NoError(t, err)
	require.Equal(t, uint64(43), r.ID())
	require.ErrorIs(t, k.SetLastRoundID(7), types.ErrRoundInProgress)
}
