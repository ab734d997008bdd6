package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewShoe_RejectsOutOfRange(t *testing.T) {
	_, err := NewShoe(0, 75, NewSeededSource(1))
	require.ErrorContains(t, err, "deck count")
	_, err = NewShoe(1001, 75, NewSeededSource(1))
	require.ErrorContains(t, err, "deck count")
	_, err = NewShoe(1, 0, NewSeededSource(1))
	require.ErrorContains(t, err, "penetration")
	_, err = NewShoe(1, 101, NewSeededSource(1))
	require.ErrorContains(t, err, "penetration")
	_, err = NewShoe(1, 75, nil)
	require.Error(t, err)
}

func TestCutCardThreshold(t *testing.T) {
	require.Equal(t, 13, CutCardThreshold(52, 75))
	require.Equal(t, 78, CutCardThreshold(312, 75))
	require.Equal(t, 0, CutCardThreshold(52, 100))
	require.Equal(t, 52, CutCardThreshold(52, 1)) // ceil(51.48)
	require.Equal(t, 13_000, CutCardThreshold(52_000, 75))
}

func TestReshuffleIfCutCardReached_SingleDeck(t *testing.T) {
	shoe, err := NewShoe(1, 75, NewSeededSource(5))
	require.NoError(t, err)
	require.Equal(t, 13, shoe.CutCard())

	for i := 0; i < 38; i++ {
		shoe.Draw()
	}
	require.False(t, shoe.ReshuffleIfCutCardReached())

	shoe.Draw()
	shoe.Draw()
	require.Equal(t, 12, shoe.Remaining())
	require.True(t, shoe.ReshuffleIfCutCardReached())
	require.Equal(t, 52, shoe.Remaining())
	require.False(t, shoe.ReshuffleIfCutCardReached())
}

func TestDrawRebuildsWhenEmpty(t *testing.T) {
	shoe, err := NewShoe(1, 100, NewSeededSource(3))
	require.NoError(t, err)
	for i := 0; i < DeckSize; i++ {
		shoe.Draw()
	}
	require.Equal(t, 0, shoe.Remaining())
	c := shoe.Draw()
	require.True(t, c.Valid())
	require.Equal(t, DeckSize-1, shoe.Remaining())
}

func TestShoeThousandDecks(t *testing.T) {
	shoe, err := NewShoe(MaxDecks, 75, NewSeededSource(11))
	require.NoError(t, err)
	require.Equal(t, 52_000, shoe.Total())
	require.Equal(t, 52_000, shoe.Remaining())

	counts := make(map[Card]int, DeckSize)
	for shoe.Remaining() > 0 {
		counts[shoe.Draw()]++
	}
	require.Len(t, counts, DeckSize)
	for c, n := range counts {
		require.Equal(t, MaxDecks, n, "card %s", c)
	}
}

func TestPlaceOnTopDrawOrder(t *testing.T) {
	shoe, err := NewShoe(6, 75, NewSeededSource(8))
	require.NoError(t, err)
	before := shoe.Remaining()

	want := MustParse("Td", "6s", "7c", "Kd")
	shoe.PlaceOnTop(want...)
	require.Equal(t, before+len(want), shoe.Remaining())
	for _, c := range want {
		require.Equal(t, c, shoe.Draw())
	}
}

func TestSeededShoesMatch(t *testing.T) {
	a, err := NewShoe(2, 75, NewSeededSource(21))
	require.NoError(t, err)
	b, err := NewShoe(2, 75, NewSeededSource(21))
	require.NoError(t, err)
	for i := 0; i < 2*DeckSize; i++ {
		require.Equal(t, a.Draw(), b.Draw())
	}
}
