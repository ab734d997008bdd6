package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"monoblackjack/internal/cards"
	"monoblackjack/x/blackjack/analytics"
	"monoblackjack/x/blackjack/keeper"
	"monoblackjack/x/blackjack/types"
)

func playCmd(c *cliContext) *cobra.Command {
	var (
		memory bool
		deal   []string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play rounds interactively against the dealer",
		Long: `Play rounds from standard input. At the bet prompt enter an amount or q to
quit. During a round enter h (hit), s (stand), d (double), p (split),
r (surrender), i (insurance) or n (no insurance).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := c.rules()
			if err != nil {
				return err
			}
			stacked, err := parseDeal(deal)
			if err != nil {
				return err
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
			out := cmd.OutOrStdout()
			k.Subscribe(textRenderer{w: out}.Observe)
			if len(stacked) > 0 {
				k.Shoe().PlaceOnTop(stacked...)
			}
			if err := playLoop(k, bufio.NewScanner(cmd.InOrStdin()), out); err != nil {
				return err
			}
			return rec.Err()
		},
	}
	cmd.Flags().BoolVar(&memory, "memory", false, "do not persist round summaries")
	cmd.Flags().StringSliceVar(&deal, "deal", nil, "cards to place on top of the shoe for the first round, e.g. As,Td,Kh,9c")
	return cmd
}

// session opens the analytics store under home, or an in-memory one.
func (c *cliContext) session(memory bool) (*analytics.Store, error) {
	if memory {
		return analytics.NewMemStore(), nil
	}
	return c.openStore()
}

// newTable wires a keeper to a recorder and continues round numbering from
// the store.
func newTable(c *cliContext, rules types.Rules, store *analytics.Store) (*keeper.Keeper, *analytics.Recorder, error) {
	k, err := keeper.NewKeeper(rules, nil, c.logger)
	if err != nil {
		return nil, nil, err
	}
	last, err := store.LastRoundID()
	if err != nil {
		return nil, nil, err
	}
	if err := k.SetLastRoundID(last); err != nil {
		return nil, nil, err
	}
	rec := analytics.NewRecorder(store, c.logger)
	k.Subscribe(rec.Observe)
	return k, rec, nil
}

func parseDeal(ss []string) ([]cards.Card, error) {
	out := make([]cards.Card, 0, len(ss))
	for _, s := range ss {
		card, err := cards.ParseCard(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("--deal: %w", err)
		}
		out = append(out, card)
	}
	return out, nil
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask prints label and returns the next non-empty line. ok is false at end
// of input.
func (p prompter) ask(label string) (string, bool) {
	for {
		fmt.Fprint(p.out, label)
		if !p.in.Scan() {
			fmt.Fprintln(p.out)
			return "", false
		}
		if line := strings.TrimSpace(p.in.Text()); line != "" {
			return strings.ToLower(line), true
		}
	}
}

func playLoop(k *keeper.Keeper, in *bufio.Scanner, out io.Writer) error {
	p := prompter{in: in, out: out}
	for {
		bankroll := k.Bankroll()
		fmt.Fprintf(out, "balance %s\n", types.FormatAmount(bankroll.Balance()))
		if !k.Rules().FreePlay() && bankroll.Balance().LT(k.Rules().MinimumBet()) {
			fmt.Fprintln(out, "bankroll below the table minimum")
			return nil
		}

		r, err := k.NewRound()
		if err != nil {
			return err
		}
		if quit := placeBet(r, p); quit {
			return nil
		}
		if err := r.Deal(); err != nil {
			return err
		}
		for !r.Done() {
			if quit := playTurn(r, p); quit {
				return nil
			}
		}
		if err := k.FinishRound(r); err != nil {
			return err
		}
	}
}

// placeBet prompts until a valid bet is placed. Free-play tables stake zero
// and only ask whether to deal.
func placeBet(r *keeper.Round, p prompter) (quit bool) {
	for {
		var (
			amount = types.ZeroAmount()
			err    error
		)
		if r.Rules().FreePlay() {
			line, ok := p.ask("deal? [y] or q> ")
			if !ok || line == "q" {
				return true
			}
		} else {
			line, ok := p.ask("bet> ")
			if !ok || line == "q" {
				return true
			}
			amount, err = types.ParseAmount(line)
		}
		if err == nil {
			err = r.PlaceBet(amount)
		}
		if err == nil {
			return false
		}
		fmt.Fprintln(p.out, "error:", err)
	}
}

func playTurn(r *keeper.Round, p prompter) (quit bool) {
	var label string
	switch r.Phase() {
	case types.PhaseInsurance:
		printHand(r, p.out)
		label = "insurance? [i]nsure [n]o"
		if r.CanSurrender() {
			label += " su[r]render"
		}
	case types.PhasePlayerTurn:
		printHand(r, p.out)
		label = "[h]it [s]tand"
		if r.CanDoubleDown() {
			label += " [d]ouble"
		}
		if r.CanSplit() {
			label += " s[p]lit"
		}
		if r.CanSurrender() {
			label += " su[r]render"
		}
	default:
		return true
	}

	line, ok := p.ask(label + "> ")
	if !ok || line == "q" {
		return true
	}
	var err error
	switch line {
	case "h", "hit":
		err = r.Hit()
	case "s", "stand":
		err = r.Stand()
	case "d", "double":
		err = r.DoubleDown()
	case "p", "split":
		err = r.Split()
	case "r", "surrender":
		err = r.Surrender()
	case "i", "insure":
		err = r.PlaceInsurance()
	case "n", "no":
		err = r.DeclineInsurance()
	default:
		err = fmt.Errorf("unknown action %q", line)
	}
	if err != nil {
		fmt.Fprintln(p.out, "error:", err)
	}
	return false
}

func printHand(r *keeper.Round, w io.Writer) {
	h := r.Hands()[r.CurrentHandIndex()]
	up, _ := r.DealerUpCard()
	fmt.Fprintf(w, "hand %d: %s (%s) vs %s\n", h.Index+1, joinCards(h.Cards), handValue(h), up)
}

func joinCards(cs []cards.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func handValue(h keeper.HandView) string {
	if h.Soft {
		return fmt.Sprintf("soft %d", h.Value)
	}
	return fmt.Sprint(h.Value)
}
