package blackjack

import (
	"fmt"
	"strings"

	"monoblackjack/internal/cards"
)

const (
	// BustThreshold is the highest total that does not bust.
	BustThreshold = 21

	aceBonus = 10
)

// Evaluate returns the best total not above BustThreshold (or the lowest
// total when every interpretation busts) and whether an Ace is still counted
// as 11 in it.
func Evaluate(cs []cards.Card) (total int, soft bool) {
	aces := 0
	for _, c := range cs {
		r := c.Rank()
		if r.IsAce() {
			aces++
		}
		total += r.Points()
	}
	// At most one Ace can be promoted: two would add 20.
	if aces > 0 && total+aceBonus <= BustThreshold {
		return total + aceBonus, true
	}
	return total, false
}

// Hand is an ordered set of cards held by one player-hand slot or the dealer.
// Totals are derived from the cards on every call.
type Hand struct {
	cards []cards.Card
}

func NewHand(cs ...cards.Card) *Hand {
	h := &Hand{cards: make([]cards.Card, 0, 4)}
	h.cards = append(h.cards, cs...)
	return h
}

func (h *Hand) Add(c cards.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in deal order.
func (h *Hand) Cards() []cards.Card {
	return append([]cards.Card(nil), h.cards...)
}

func (h *Hand) Len() int { return len(h.cards) }

// Card returns the i-th card dealt.
func (h *Hand) Card(i int) cards.Card { return h.cards[i] }

func (h *Hand) Value() int {
	v, _ := Evaluate(h.cards)
	return v
}

func (h *Hand) IsSoft() bool {
	_, soft := Evaluate(h.cards)
	return soft
}

func (h *Hand) IsBusted() bool {
	return h.Value() > BustThreshold
}

// IsNaturalBlackjack reports a two-card 21. Whether it pays as a natural also
// depends on the round: a 21 on a split hand is not a natural.
func (h *Hand) IsNaturalBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == BustThreshold
}

// IsPair is true for exactly two cards of the same rank. K-Q is not a pair.
func (h *Hand) IsPair() bool {
	return len(h.cards) == 2 && h.cards[0].Rank() == h.cards[1].Rank()
}

// SplitOff removes and returns the second card of a pair.
func (h *Hand) SplitOff() (cards.Card, error) {
	if !h.IsPair() {
		return 0, fmt.Errorf("split requires a pair, hand is %s", h)
	}
	c := h.cards[1]
	h.cards = h.cards[:1]
	return c, nil
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
