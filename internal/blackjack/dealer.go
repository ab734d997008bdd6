package blackjack

import "monoblackjack/internal/cards"

// DealerStandsOn is the lowest total the dealer stands on.
const DealerStandsOn = 17

// DealerShouldHit is the fixed house policy: hit below 17, and hit a soft 17
// when the table says so.
func DealerShouldHit(h *Hand, hitsSoft17 bool) bool {
	v := h.Value()
	if v < DealerStandsOn {
		return true
	}
	return v == DealerStandsOn && hitsSoft17 && h.IsSoft()
}

// PlayDealer runs the dealer policy to completion. Every card is reported to
// onHit, with the total and softness it was drawn against, before the next
// decision is made.
func PlayDealer(h *Hand, hitsSoft17 bool, draw func() cards.Card, onHit func(c cards.Card, before int, softBefore bool)) {
	for DealerShouldHit(h, hitsSoft17) {
		before, soft := h.Value(), h.IsSoft()
		c := draw()
		h.Add(c)
		if onHit != nil {
			onHit(c, before, soft)
		}
	}
}
