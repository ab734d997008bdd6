package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"monoblackjack/x/blackjack/analytics"
	"monoblackjack/x/blackjack/types"
)

func statsCmd(c *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Aggregate every round recorded under --home",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := analytics.Aggregate(store)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}

func printStats(w io.Writer, s analytics.Stats) {
	fmt.Fprintf(w, "rounds: %d\n", s.Rounds)
	fmt.Fprintf(w, "hands: %d\n", s.Hands)
	fmt.Fprintf(w, "wins: %d\n", s.Wins)
	fmt.Fprintf(w, "losses: %d\n", s.Losses)
	fmt.Fprintf(w, "pushes: %d\n", s.Pushes)
	fmt.Fprintf(w, "blackjacks: %d\n", s.Blackjacks)
	fmt.Fprintf(w, "surrenders: %d\n", s.Surrenders)
	fmt.Fprintf(w, "busts: %d\n", s.PlayerBusts)
	fmt.Fprintf(w, "doubles: %d\n", s.Doubles)
	fmt.Fprintf(w, "cards seen: %d\n", s.CardsSeen)
	fmt.Fprintf(w, "wagered: %s\n", types.FormatAmount(s.Wagered))
	fmt.Fprintf(w, "net: %s\n", types.FormatAmount(s.Net))
	fmt.Fprintf(w, "bust rate: %.4f\n", s.BustRate())

	actions := make([]string, 0, len(s.Actions))
	for a := range s.Actions {
		actions = append(actions, string(a))
	}
	sort.Strings(actions)
	for _, a := range actions {
		fmt.Fprintf(w, "action %s: %d\n", a, s.Actions[analytics.Action(a)])
	}
}
