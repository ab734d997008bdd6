package keeper

import (
	"monoblackjack/internal/blackjack"
	"monoblackjack/internal/cards"
	"monoblackjack/x/blackjack/types"
)

func (r *Round) revealHole() {
	if r.holeRevealed || r.dealer.Len() < 2 {
		return
	}
	r.holeRevealed = true
	r.emit(types.Event{
		Type:  types.EventTypeHoleCardRevealed,
		Who:   types.Dealer,
		Card:  r.dealer.Card(1),
		Value: r.dealer.Value(),
		Soft:  r.dealer.IsSoft(),
	})
}

// playDealer reveals the hole card and runs the house policy, reporting each
// drawn card before the next decision.
func (r *Round) playDealer() {
	r.phase = types.PhaseDealerTurn
	r.emit(types.Event{Type: types.EventTypeDealerTurnStarted, Who: types.Dealer})
	r.revealHole()

	blackjack.PlayDealer(r.dealer, r.rules.DealerHitsSoft17(), r.draw, func(c cards.Card, before int, softBefore bool) {
		r.emit(types.Event{Type: types.EventTypeDealerHit, Who: types.Dealer, Value: before, Soft: softBefore})
		r.emit(types.Event{
			Type:      types.EventTypeCardDealt,
			Who:       types.Dealer,
			Card:      c,
			Remaining: r.shoe.Remaining(),
		})
	})

	end := types.EventTypeDealerStood
	if r.dealer.IsBusted() {
		end = types.EventTypeDealerBusted
	}
	r.emit(types.Event{Type: end, Who: types.Dealer, Value: r.dealer.Value(), Soft: r.dealer.IsSoft()})
}

// resolve settles every hand in index order, applies the payouts to the
// bankroll and completes the round.
func (r *Round) resolve() {
	r.phase = types.PhaseResolution
	r.revealHole()

	for i, s := range r.hands {
		natural := s.hand.IsNaturalBlackjack() && r.splits == 0
		outcome := resolveHand(s.hand, natural, s.surrendered, r.dealer)
		payout := payoutFor(outcome, s.bet, r.rules.BlackjackPayout())
		r.bankroll.Apply(payout)
		r.net = r.net.Add(payout)
		r.emit(types.Event{
			Type:      types.EventTypeHandResolved,
			Who:       types.Player,
			HandIndex: i,
			Value:     s.hand.Value(),
			Soft:      s.hand.IsSoft(),
			Outcome:   outcome,
			Amount:    payout,
			Blackjack: outcome == types.OutcomeBlackjack,
		})
	}

	r.phase = types.PhaseComplete
	r.emit(types.Event{Type: types.EventTypeRoundComplete, Amount: r.net})
}

// resolveHand compares one player hand with the dealer. natural is true only
// for a two-card 21 in a round without splits.
func resolveHand(h *blackjack.Hand, natural, surrendered bool, dealer *blackjack.Hand) types.Outcome {
	dealerNatural := dealer.IsNaturalBlackjack()
	switch {
	case surrendered:
		return types.OutcomeSurrender
	case natural && !dealerNatural:
		return types.OutcomeBlackjack
	case dealerNatural && !natural:
		return types.OutcomeLose
	case natural && dealerNatural:
		return types.OutcomePush
	case h.IsBusted():
		return types.OutcomeLose
	case dealer.IsBusted():
		return types.OutcomeWin
	}
	pv, dv := h.Value(), dealer.Value()
	switch {
	case pv > dv:
		return types.OutcomeWin
	case pv < dv:
		return types.OutcomeLose
	default:
		return types.OutcomePush
	}
}
