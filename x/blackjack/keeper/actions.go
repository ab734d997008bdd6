package keeper

import (
	"monoblackjack/x/blackjack/types"
)

// Hit deals one card to the current hand. A bust moves play on.
func (r *Round) Hit() error {
	if err := r.checkHit(); err != nil {
		return err
	}
	if r.resolvePendingPeek() {
		return nil
	}

	idx := r.current
	h := r.currentSlot().hand
	r.emit(types.Event{
		Type:      types.EventTypePlayerHit,
		Who:       types.Player,
		HandIndex: idx,
		Value:     h.Value(),
		Soft:      h.IsSoft(),
	})
	r.dealToPlayer(idx)
	if h.IsBusted() {
		r.emitBust(idx)
		r.advance()
	}
	return nil
}

func (r *Round) Stand() error {
	if err := r.checkStand(); err != nil {
		return err
	}
	if r.resolvePendingPeek() {
		return nil
	}

	h := r.currentSlot().hand
	r.emit(types.Event{
		Type:      types.EventTypePlayerStood,
		Who:       types.Player,
		HandIndex: r.current,
		Value:     h.Value(),
		Soft:      h.IsSoft(),
	})
	r.advance()
	return nil
}

// DoubleDown doubles the current bet, deals exactly one card and ends the
// hand.
func (r *Round) DoubleDown() error {
	if err := r.checkDoubleDown(); err != nil {
		return err
	}
	if r.resolvePendingPeek() {
		return nil
	}

	idx := r.current
	s := r.currentSlot()
	before, soft := s.hand.Value(), s.hand.IsSoft()
	s.bet = s.bet.MulInt64(2)
	s.doubled = true
	r.emit(types.Event{
		Type:      types.EventTypePlayerDoubled,
		Who:       types.Player,
		HandIndex: idx,
		Value:     before,
		Soft:      soft,
		Amount:    s.bet,
	})
	r.dealToPlayer(idx)
	if s.hand.IsBusted() {
		r.emitBust(idx)
	}
	r.advance()
	return nil
}

// Surrender forfeits half the bet on the first two cards and ends the round.
func (r *Round) Surrender() error {
	if err := r.checkSurrender(); err != nil {
		return err
	}
	if !r.rules.EarlySurrender() && r.resolvePendingPeek() {
		return nil
	}

	s := r.hands[0]
	s.surrendered = true
	r.emit(types.Event{
		Type:   types.EventTypePlayerSurrendered,
		Who:    types.Player,
		Value:  s.hand.Value(),
		Soft:   s.hand.IsSoft(),
		Amount: types.Half(s.bet),
	})
	r.resolve()
	return nil
}

func (r *Round) emitBust(idx int) {
	r.emit(types.Event{
		Type:      types.EventTypePlayerBusted,
		Who:       types.Player,
		HandIndex: idx,
		Value:     r.hands[idx].hand.Value(),
	})
}

// advance moves to the next split hand, or past the last one to the dealer
// when any hand is still live.
func (r *Round) advance() {
	if next := r.current + 1; next < len(r.hands) {
		r.startPlayerTurn(next)
		return
	}
	for _, s := range r.hands {
		if s.live() {
			r.playDealer()
			break
		}
	}
	r.resolve()
}
