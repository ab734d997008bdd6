package cmd

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"

	"monoblackjack/internal/cards"
	"monoblackjack/x/blackjack/analytics"
	"monoblackjack/x/blackjack/keeper"
	"monoblackjack/x/blackjack/types"
)

func simulateCmd(c *cliContext) *cobra.Command {
	var (
		rounds int
		bet    string
		memory bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play rounds with a fixed basic policy and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rounds <= 0 {
				return fmt.Errorf("--rounds must be > 0, got %d", rounds)
			}
			rules, err := c.rules()
			if err != nil {
				return err
			}
			stake := rules.MinimumBet()
			if rules.FreePlay() {
				stake = types.ZeroAmount()
			} else if bet != "" {
				if stake, err = types.ParseAmount(bet); err != nil {
					return err
				}
			}

			store, err := c.session(memory)
			if err != nil {
				return err
			}
			defer store.Close()

			k, rec, err := newTable(c, rules, store)
			if err != nil {
				return err
			}
			stats := analytics.NewStats()
			k.Subscribe(func(e types.Event) {
				if e.Type == types.EventTypeRoundComplete && rec.Last() != nil && rec.Last().Round == e.Round {
					stats.Add(rec.Last())
				}
			})

			played, err := simulate(k, rounds, stake)
			if err != nil {
				return err
			}
			if err := rec.Err(); err != nil {
				return err
			}
			c.logger.Info("simulation finished", "rounds", played, "balance", types.FormatAmount(k.Bankroll().Balance()))
			out := cmd.OutOrStdout()
			printStats(out, stats)
			fmt.Fprintf(out, "balance: %s\n", types.FormatAmount(k.Bankroll().Balance()))
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 100, "number of rounds to play")
	cmd.Flags().StringVar(&bet, "bet", "", "stake per round (default the table minimum)")
	cmd.Flags().BoolVar(&memory, "memory", false, "do not persist round summaries")
	return cmd
}

// simulate plays up to n rounds at stake and stops early when the bankroll
// can no longer cover it.
func simulate(k *keeper.Keeper, n int, stake sdkmath.LegacyDec) (int, error) {
	for i := 0; i < n; i++ {
		if stake.GT(k.Bankroll().Balance()) {
			k.Logger().Info("bankroll exhausted", "round", k.LastRoundID(), "balance", types.FormatAmount(k.Bankroll().Balance()))
			return i, nil
		}
		r, err := k.NewRound()
		if err != nil {
			return i, err
		}
		if err := r.PlaceBet(stake); err != nil {
			return i, err
		}
		if err := r.Deal(); err != nil {
			return i, err
		}
		if err := autoPlay(r); err != nil {
			return i, err
		}
		if err := k.FinishRound(r); err != nil {
			return i, err
		}
	}
	return n, nil
}

// autoPlay drives a round to completion: decline insurance, split aces and
// eights, double hard 10 and 11, hit below 17.
func autoPlay(r *keeper.Round) error {
	for !r.Done() {
		var err error
		switch r.Phase() {
		case types.PhaseInsurance:
			err = r.DeclineInsurance()
		case types.PhasePlayerTurn:
			err = playHand(r, r.Hands()[r.CurrentHandIndex()])
		default:
			return types.ErrWrongPhase.Wrapf("round %d stalled in %s", r.ID(), r.Phase())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func playHand(r *keeper.Round, h keeper.HandView) error {
	if len(h.Cards) == 2 && h.Cards[0].Rank() == h.Cards[1].Rank() {
		rank := h.Cards[0].Rank()
		if (rank == cards.Ace || rank == cards.Eight) && r.CanSplit() {
			return r.Split()
		}
	}
	if !h.Soft && (h.Value == 10 || h.Value == 11) && r.CanDoubleDown() {
		return r.DoubleDown()
	}
	if h.Value < 17 && r.CanHit() {
		return r.Hit()
	}
	return r.Stand()
}
