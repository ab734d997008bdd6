package keeper

import (
	"monoblackjack/internal/blackjack"
	"monoblackjack/x/blackjack/types"
)

// Split moves the second card of a pair to a new hand carrying an equal bet
// and deals one card to each. Split aces restrict both hands to standing or,
// when allowed, resplitting. Play stays on the current hand.
func (r *Round) Split() error {
	if err := r.checkSplit(); err != nil {
		return err
	}
	if r.resolvePendingPeek() {
		return nil
	}

	from := r.current
	s := r.currentSlot()
	before, soft := s.hand.Value(), s.hand.IsSoft()
	moved, err := s.hand.SplitOff()
	if err != nil {
		// checkSplit guarantees a pair.
		panic(err)
	}
	aces := moved.Rank().IsAce()
	if aces {
		s.splitAces = true
	}
	to := len(r.hands)
	r.hands = append(r.hands, &handSlot{
		hand:      blackjack.NewHand(moved),
		bet:       s.bet,
		splitAces: aces,
	})
	r.splits++

	r.emit(types.Event{
		Type:       types.EventTypePlayerSplit,
		Who:        types.Player,
		HandIndex:  from,
		SplitIndex: to,
		Card:       moved,
		Value:      before,
		Soft:       soft,
		Amount:     s.bet,
	})
	r.dealToPlayer(from)
	r.dealToPlayer(to)
	return nil
}
