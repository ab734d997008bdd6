package keeper

import (
	sdkmath "cosmossdk.io/math"

	"monoblackjack/internal/blackjack"
	"monoblackjack/x/blackjack/types"
)

// PlaceBet records the main bet for hand 0. Wagered tables need an amount in
// [minimum, maximum] that the bankroll covers; free-play tables take zero.
func (r *Round) PlaceBet(amount sdkmath.LegacyDec) error {
	if err := r.requirePhase(types.PhaseBetting); err != nil {
		return err
	}
	if err := r.validateBet(amount); err != nil {
		return err
	}

	r.hands = []*handSlot{{hand: blackjack.NewHand(), bet: amount}}
	r.phase = types.PhaseDealing
	r.emit(types.Event{Type: types.EventTypeBetPlaced, Who: types.Player, Amount: amount})
	return nil
}

func (r *Round) validateBet(amount sdkmath.LegacyDec) error {
	if !types.ValidAmount(amount) {
		return types.ErrInvalidAmount.Wrap("bet is nil")
	}
	if r.rules.FreePlay() {
		if !amount.IsZero() {
			return types.ErrInvalidAmount.Wrapf("free play bets must be 0, got %s", types.FormatAmount(amount))
		}
		return nil
	}
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("bet must be > 0, got %s", types.FormatAmount(amount))
	}
	if amount.LT(r.rules.MinimumBet()) {
		return types.ErrInvalidAmount.Wrapf("bet %s below minimum %s", types.FormatAmount(amount), types.FormatAmount(r.rules.MinimumBet()))
	}
	if amount.GT(r.rules.MaximumBet()) {
		return types.ErrInvalidAmount.Wrapf("bet %s above maximum %s", types.FormatAmount(amount), types.FormatAmount(r.rules.MaximumBet()))
	}
	if amount.GT(r.bankroll.Balance()) {
		return types.ErrInvalidAmount.Wrapf("bet %s exceeds bankroll %s", types.FormatAmount(amount), types.FormatAmount(r.bankroll.Balance()))
	}
	return nil
}

// Deal runs the cut-card check, deals two cards each (the dealer's second
// face down) and moves to Insurance, PlayerTurn, or straight to Resolution
// when a natural ends the round.
func (r *Round) Deal() error {
	if err := r.requirePhase(types.PhaseDealing); err != nil {
		return err
	}

	if r.shoe.ReshuffleIfCutCardReached() {
		r.emit(types.Event{Type: types.EventTypeShoeReshuffled, Remaining: r.shoe.Remaining()})
	}

	r.dealToPlayer(0)
	up := r.dealToDealer(false)
	r.dealToPlayer(0)
	r.dealToDealer(true)

	h := r.hands[0].hand
	r.emit(types.Event{
		Type:  types.EventTypeInitialDealComplete,
		Card:  up,
		Value: h.Value(),
		Soft:  h.IsSoft(),
	})

	switch {
	case up.Rank().IsAce():
		r.peek = peekPending
		r.phase = types.PhaseInsurance
		r.emit(types.Event{
			Type:   types.EventTypeInsuranceOffered,
			Who:    types.Player,
			Amount: types.Half(r.hands[0].bet),
		})
		return nil
	case up.Rank().IsTenValue():
		r.peek = peekPending
		if h.IsNaturalBlackjack() {
			r.peekHole()
		}
	}

	if r.settleNaturals() {
		return nil
	}
	r.startPlayerTurn(0)
	return nil
}

func (r *Round) startPlayerTurn(idx int) {
	r.phase = types.PhasePlayerTurn
	r.current = idx
	h := r.hands[idx].hand
	r.emit(types.Event{
		Type:      types.EventTypePlayerTurnStarted,
		Who:       types.Player,
		HandIndex: idx,
		Value:     h.Value(),
		Soft:      h.IsSoft(),
	})
}
