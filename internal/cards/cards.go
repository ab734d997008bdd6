package cards

import (
	"fmt"
	"strings"
)

// Rank is the card rank, Ace=1 through King=13.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Suit is the card suit, 0..3.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	RanksPerSuit = 13
	DeckSize     = 52
)

// Card is a 0..51 id, where:
// - rank = (id % 13) + 1  (1..13, Ace low)
// - suit = (id / 13)      (0..3)
//
// Cards are plain values; hands and shoes copy them freely.
type Card uint8

// New builds the card for rank and suit. Out-of-range inputs panic; use
// ParseCard for untrusted text.
func New(r Rank, s Suit) Card {
	if r < Ace || r > King {
		panic(fmt.Sprintf("cards: invalid rank %d", r))
	}
	if s > Spades {
		panic(fmt.Sprintf("cards: invalid suit %d", s))
	}
	return Card(uint8(s)*RanksPerSuit + uint8(r) - 1)
}

func (c Card) Rank() Rank { // 1..13
	return Rank(c%RanksPerSuit) + 1
}

func (c Card) Suit() Suit { // 0..3
	return Suit(c / RanksPerSuit)
}

// Valid reports whether c is one of the 52 card ids.
func (c Card) Valid() bool {
	return c < DeckSize
}

// Points is the blackjack point value with the Ace counted low. Hands decide
// whether an Ace is promoted to 11.
func (r Rank) Points() int {
	switch {
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

func (r Rank) IsAce() bool { return r == Ace }

// IsTenValue is true for 10, J, Q and K.
func (r Rank) IsTenValue() bool { return r >= Ten && r <= King }

const (
	rankChars = "A23456789TJQK"
	suitChars = "cdhs"
)

func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return string(rankChars[r-1])
}

func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses the two-character form produced by String, e.g. "Td" or
// "As". "10" is accepted as an alias for "T".
func ParseCard(s string) (Card, error) {
	if len(s) == 3 && s[:2] == "10" {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q", s)
	}
	ri := strings.IndexByte(rankChars, upper(s[0]))
	if ri < 0 {
		return 0, fmt.Errorf("invalid rank in card %q", s)
	}
	si := strings.IndexByte(suitChars, lower(s[1]))
	if si < 0 {
		return 0, fmt.Errorf("invalid suit in card %q", s)
	}
	return New(Rank(ri+1), Suit(si)), nil
}

// MustParse parses each card and panics on the first invalid one. It is meant
// for fixed deal scripts.
func MustParse(ss ...string) []Card {
	out := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			panic(err.Error())
		}
		out = append(out, c)
	}
	return out
}

// NewDeck returns one ordered 52-card deck.
func NewDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := 0; i < DeckSize; i++ {
		deck[i] = Card(i)
	}
	return deck
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
