package keeper

import (
	"monoblackjack/x/blackjack/types"
)

// PlaceInsurance stakes half the main bet against a dealer natural. When the
// available funds cannot cover the stake the offer is declined instead.
func (r *Round) PlaceInsurance() error {
	if err := r.checkInsurance(); err != nil {
		return err
	}
	stake := types.Half(r.hands[0].bet)
	e := r.insuranceDecision()
	e.Amount = stake
	if r.canCover(stake) {
		r.insured = true
		r.insuranceStake = stake
		e.Type = types.EventTypeInsurancePlaced
	}
	r.emit(e)
	r.finishInsurance()
	return nil
}

func (r *Round) DeclineInsurance() error {
	if err := r.checkInsurance(); err != nil {
		return err
	}
	r.emit(r.insuranceDecision())
	r.finishInsurance()
	return nil
}

// insuranceDecision is a declined-insurance event carrying the hand it was
// decided on.
func (r *Round) insuranceDecision() types.Event {
	h := r.hands[0].hand
	return types.Event{
		Type:  types.EventTypeInsuranceDeclined,
		Who:   types.Player,
		Value: h.Value(),
		Soft:  h.IsSoft(),
	}
}

// finishInsurance peeks, settles any insurance stake and then either ends the
// round on a natural or opens the player's turn.
func (r *Round) finishInsurance() {
	dealerBJ := r.peekHole()
	if r.insured {
		payout := insurancePayout(r.insuranceStake, dealerBJ)
		r.bankroll.Apply(payout)
		r.net = r.net.Add(payout)
		r.insuranceSettled = true
		r.emit(types.Event{
			Type:      types.EventTypeInsuranceResult,
			Who:       types.Player,
			Amount:    payout,
			Blackjack: dealerBJ,
		})
	}
	if r.settleNaturals() {
		return
	}
	r.startPlayerTurn(0)
}

// peekHole checks the hole card for a natural and reports the result.
func (r *Round) peekHole() bool {
	bj := r.dealer.IsNaturalBlackjack()
	r.peek = peekDone
	r.emit(types.Event{Type: types.EventTypeDealerPeeked, Who: types.Dealer, Blackjack: bj})
	return bj
}

// resolvePendingPeek runs a deferred peek ahead of the first player action.
// It reports whether the dealer had a natural, in which case the round is
// already settled and the action must not be applied.
func (r *Round) resolvePendingPeek() bool {
	if r.peek != peekPending {
		return false
	}
	if !r.peekHole() {
		return false
	}
	return r.settleNaturals()
}

// settleNaturals ends the round when either side holds a known natural.
func (r *Round) settleNaturals() bool {
	dealerBJ := r.peek != peekPending && r.dealer.IsNaturalBlackjack()
	playerBJ := r.hands[0].hand.IsNaturalBlackjack() && r.splits == 0
	if !dealerBJ && !playerBJ {
		return false
	}
	if dealerBJ {
		r.revealHole()
		r.emit(types.Event{Type: types.EventTypeBlackjackDetected, Who: types.Dealer, Value: r.dealer.Value()})
	}
	if playerBJ {
		r.emit(types.Event{Type: types.EventTypeBlackjackDetected, Who: types.Player, Value: r.hands[0].hand.Value()})
	}
	r.resolve()
	return true
}
