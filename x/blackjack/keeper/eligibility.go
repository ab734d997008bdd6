package keeper

import (
	"monoblackjack/internal/blackjack"
	"monoblackjack/x/blackjack/types"
)

// Each check returns nil when the action may be applied to the current hand,
// otherwise ErrWrongPhase or ErrNotEligible with the reason. The Can*
// predicates are the boolean form.

func (r *Round) CanHit() bool              { return r.checkHit() == nil }
func (r *Round) CanStand() bool            { return r.checkStand() == nil }
func (r *Round) CanDoubleDown() bool       { return r.checkDoubleDown() == nil }
func (r *Round) CanSplit() bool            { return r.checkSplit() == nil }
func (r *Round) CanSurrender() bool        { return r.checkSurrender() == nil }
func (r *Round) CanPlaceInsurance() bool   { return r.checkInsurance() == nil }
func (r *Round) CanDeclineInsurance() bool { return r.checkInsurance() == nil }

func (r *Round) checkHit() error {
	if err := r.requirePhase(types.PhasePlayerTurn); err != nil {
		return err
	}
	s := r.currentSlot()
	if s.splitAces {
		return types.ErrNotEligible.Wrap("split aces cannot take another card")
	}
	if s.hand.Value() >= blackjack.BustThreshold {
		return types.ErrNotEligible.Wrapf("hand already totals %d", s.hand.Value())
	}
	return nil
}

func (r *Round) checkStand() error {
	return r.requirePhase(types.PhasePlayerTurn)
}

func (r *Round) checkDoubleDown() error {
	if err := r.requirePhase(types.PhasePlayerTurn); err != nil {
		return err
	}
	s := r.currentSlot()
	if s.hand.Len() != 2 {
		return types.ErrNotEligible.Wrap("double down needs exactly two cards")
	}
	if s.splitAces {
		return types.ErrNotEligible.Wrap("split aces cannot double")
	}
	if v := s.hand.Value(); !r.rules.DoubleAllowedOn(v) {
		return types.ErrNotEligible.Wrapf("double policy %s excludes %d", r.rules.DoublePolicy(), v)
	}
	if s.bet.MulInt64(2).GT(r.rules.MaximumBet()) {
		return types.ErrNotEligible.Wrap("doubled bet would exceed the table maximum")
	}
	if r.splits > 0 && !r.rules.DoubleAfterSplit() {
		return types.ErrNotEligible.Wrap("double after split is not allowed")
	}
	if !r.canCover(s.bet) {
		return types.ErrNotEligible.Wrapf("available funds %s cannot cover %s", types.FormatAmount(r.AvailableFunds()), types.FormatAmount(s.bet))
	}
	return nil
}

func (r *Round) checkSplit() error {
	if err := r.requirePhase(types.PhasePlayerTurn); err != nil {
		return err
	}
	s := r.currentSlot()
	if !s.hand.IsPair() {
		return types.ErrNotEligible.Wrap("split needs a pair")
	}
	if r.splits >= r.rules.MaxSplits() {
		return types.ErrNotEligible.Wrapf("already split %d times", r.splits)
	}
	if s.hand.Card(0).Rank().IsAce() && r.splits > 0 && !r.rules.ResplitAces() {
		return types.ErrNotEligible.Wrap("resplitting aces is not allowed")
	}
	if !r.canCover(s.bet) {
		return types.ErrNotEligible.Wrapf("available funds %s cannot cover %s", types.FormatAmount(r.AvailableFunds()), types.FormatAmount(s.bet))
	}
	return nil
}

// checkSurrender applies the two surrender windows. Early surrender is open
// during the insurance decision and in the player turn until the hole card
// has been checked. Late surrender is open in the player turn; a request made
// while the check is still pending runs the check first.
func (r *Round) checkSurrender() error {
	switch r.phase {
	case types.PhaseInsurance:
		if !r.rules.EarlySurrender() {
			return types.ErrNotEligible.Wrap("only early surrender is offered before the insurance decision")
		}
	case types.PhasePlayerTurn:
		switch {
		case r.rules.EarlySurrender():
			if r.peek == peekDone {
				return types.ErrNotEligible.Wrap("early surrender closed once the dealer checked for blackjack")
			}
		case r.rules.LateSurrender():
		default:
			return types.ErrNotEligible.Wrap("surrender is not offered at this table")
		}
	default:
		return types.ErrWrongPhase.Wrapf("surrender needs insurance or player_turn, round is in %s", r.phase)
	}
	if r.splits > 0 {
		return types.ErrNotEligible.Wrap("cannot surrender after a split")
	}
	if r.current != 0 {
		return types.ErrNotEligible.Wrap("only the first hand may surrender")
	}
	h := r.hands[0].hand
	if h.Len() != 2 {
		return types.ErrNotEligible.Wrap("surrender needs the first two cards")
	}
	if h.IsNaturalBlackjack() {
		return types.ErrNotEligible.Wrap("cannot surrender a natural")
	}
	return nil
}

func (r *Round) checkInsurance() error {
	return r.requirePhase(types.PhaseInsurance)
}
