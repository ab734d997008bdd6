package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardRankSuitRoundTrip(t *testing.T) {
	for id := 0; id < DeckSize; id++ {
		c := Card(id)
		require.Equal(t, c, New(c.Rank(), c.Suit()))
		require.True(t, c.Valid())
	}
	require.False(t, Card(DeckSize).Valid())
}

func TestRankPoints(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Ace, 1},
		{Two, 2},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}
	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.rank.Points())
		})
	}
	require.True(t, Ace.IsAce())
	require.False(t, King.IsAce())
	require.True(t, Jack.IsTenValue())
	require.False(t, Nine.IsTenValue())
	require.False(t, Ace.IsTenValue())
}

func TestParseCard(t *testing.T) {
	c, err := ParseCard("Td")
	require.NoError(t, err)
	require.Equal(t, New(Ten, Diamonds), c)
	require.Equal(t, "Td", c.String())

	c, err = ParseCard("10h")
	require.NoError(t, err)
	require.Equal(t, New(Ten, Hearts), c)

	c, err = ParseCard("as")
	require.NoError(t, err)
	require.Equal(t, New(Ace, Spades), c)

	for _, bad := range []string{"", "1c", "Ax", "Tdd", "ZZ"} {
		_, err := ParseCard(bad)
		require.Error(t, err, bad)
	}
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	require.Len(t, MustParse("Ac", "Kd"), 2)
	require.Panics(t, func() { MustParse("Ac", "??") })
}

func TestNewDeckIsComplete(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, DeckSize)
	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		require.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}
