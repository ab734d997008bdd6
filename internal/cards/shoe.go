package cards

import "fmt"

const (
	MinDecks = 1
	MaxDecks = 1000
)

// Shoe owns the live card pool for one or more decks. The top of the shoe is
// the end of the pool slice.
type Shoe struct {
	decks      int
	penetrates int
	cutCard    int
	src        Source
	pool       []Card
}

// NewShoe builds and shuffles a shoe of decks × 52 cards. penetration is the
// percentage of the shoe dealt before the cut card comes out.
func NewShoe(decks int, penetration int, src Source) (*Shoe, error) {
	if decks < MinDecks || decks > MaxDecks {
		return nil, fmt.Errorf("deck count must be in [%d,%d], got %d", MinDecks, MaxDecks, decks)
	}
	if penetration < 1 || penetration > 100 {
		return nil, fmt.Errorf("penetration must be in [1,100], got %d", penetration)
	}
	if src == nil {
		return nil, fmt.Errorf("shoe: nil random source")
	}
	s := &Shoe{
		decks:      decks,
		penetrates: penetration,
		cutCard:    CutCardThreshold(decks*DeckSize, penetration),
		src:        src,
	}
	s.Reshuffle()
	return s, nil
}

// CutCardThreshold is ceil(total × (100 − penetration) / 100).
func CutCardThreshold(total int, penetration int) int {
	num := int64(total) * int64(100-penetration)
	return int((num + 99) / 100)
}

func (s *Shoe) Decks() int       { return s.decks }
func (s *Shoe) Penetration() int { return s.penetrates }
func (s *Shoe) Total() int       { return s.decks * DeckSize }
func (s *Shoe) Remaining() int   { return len(s.pool) }

// CutCard is the remaining-card count at or below which the next round-start
// check reshuffles.
func (s *Shoe) CutCard() int { return s.cutCard }

// Reshuffle rebuilds the full multi-deck pool and shuffles it.
func (s *Shoe) Reshuffle() {
	total := s.Total()
	if cap(s.pool) < total {
		s.pool = make([]Card, 0, total)
	}
	s.pool = s.pool[:0]
	for d := 0; d < s.decks; d++ {
		s.pool = append(s.pool, NewDeck()...)
	}
	Shuffle(s.pool, s.src)
}

// Draw removes and returns the top card. An exhausted pool is rebuilt and
// reshuffled first, so Draw never fails.
func (s *Shoe) Draw() Card {
	if len(s.pool) == 0 {
		s.Reshuffle()
	}
	c := s.pool[len(s.pool)-1]
	s.pool = s.pool[:len(s.pool)-1]
	return c
}

// ReshuffleIfCutCardReached is called once per round before dealing. It
// reports whether the shoe was rebuilt.
func (s *Shoe) ReshuffleIfCutCardReached() bool {
	if len(s.pool) > s.cutCard {
		return false
	}
	s.Reshuffle()
	return true
}

// PlaceOnTop arranges cs to be the next cards drawn, cs[0] first. It replays
// a recorded deal on top of the shuffled pool.
func (s *Shoe) PlaceOnTop(cs ...Card) {
	for i := len(cs) - 1; i >= 0; i-- {
		s.pool = append(s.pool, cs[i])
	}
}
