package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"monoblackjack/internal/cards"
)

func mustDeal(t *testing.T, ss ...string) []cards.Card {
	t.Helper()
	cs, err := parseDeal(ss)
	require.NoError(t, err)
	return cs
}
