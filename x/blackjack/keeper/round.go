package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"monoblackjack/internal/blackjack"
	"monoblackjack/internal/cards"
	"monoblackjack/x/blackjack/types"
)

type peekState uint8

const (
	// peekNone: the up-card cannot hide a natural.
	peekNone peekState = iota
	// peekPending: the hole card has not been checked yet.
	peekPending
	peekDone
)

type handSlot struct {
	hand        *blackjack.Hand
	bet         sdkmath.LegacyDec
	splitAces   bool
	doubled     bool
	surrendered bool
}

func (s *handSlot) live() bool {
	return !s.surrendered && !s.hand.IsBusted()
}

// Round drives one round of blackjack from bet to payout. It borrows the
// shoe and bankroll for its lifetime and is not safe for concurrent use.
type Round struct {
	id       uint64
	rules    types.Rules
	shoe     *cards.Shoe
	bankroll *types.Bankroll
	sinks    []types.EventSink

	phase   types.Phase
	hands   []*handSlot
	current int
	splits  int

	dealer       *blackjack.Hand
	holeRevealed bool
	peek         peekState

	insured          bool
	insuranceStake   sdkmath.LegacyDec
	insuranceSettled bool

	net     sdkmath.LegacyDec
	seq     uint32
	sinkErr error
}

// NewRound opens a round in the Betting phase. Events are delivered to each
// sink in order.
func NewRound(id uint64, rules types.Rules, shoe *cards.Shoe, bankroll *types.Bankroll, sinks ...types.EventSink) (*Round, error) {
	if !rules.Valid() {
		return nil, types.ErrInvalidRules.Wrap("rules were not built by NewRules")
	}
	if shoe == nil {
		return nil, types.ErrInvalidRequest.Wrap("shoe is nil")
	}
	if bankroll == nil {
		return nil, types.ErrInvalidRequest.Wrap("bankroll is nil")
	}
	live := make([]types.EventSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	return &Round{
		id:             id,
		rules:          rules,
		shoe:           shoe,
		bankroll:       bankroll,
		sinks:          live,
		phase:          types.PhaseBetting,
		dealer:         blackjack.NewHand(),
		insuranceStake: sdkmath.LegacyZeroDec(),
		net:            sdkmath.LegacyZeroDec(),
	}, nil
}

// HandView is a read-only snapshot of one player hand.
type HandView struct {
	Index       int
	Cards       []cards.Card
	Value       int
	Soft        bool
	Bet         sdkmath.LegacyDec
	SplitAces   bool
	Doubled     bool
	Surrendered bool
	Busted      bool
}

func (r *Round) ID() uint64                { return r.id }
func (r *Round) Rules() types.Rules        { return r.rules }
func (r *Round) Phase() types.Phase        { return r.phase }
func (r *Round) CurrentHandIndex() int     { return r.current }
func (r *Round) SplitCount() int           { return r.splits }
func (r *Round) Net() sdkmath.LegacyDec    { return r.net }
func (r *Round) Done() bool                { return r.phase == types.PhaseComplete }
func (r *Round) HoleCardRevealed() bool    { return r.holeRevealed }
func (r *Round) Bankroll() *types.Bankroll { return r.bankroll }

// SinkErr returns the first failure raised by an event sink, if any.
func (r *Round) SinkErr() error { return r.sinkErr }

// InsuranceStake is the placed insurance bet, zero when none was placed.
func (r *Round) InsuranceStake() sdkmath.LegacyDec { return r.insuranceStake }

func (r *Round) Hands() []HandView {
	out := make([]HandView, len(r.hands))
	for i, s := range r.hands {
		out[i] = HandView{
			Index:       i,
			Cards:       s.hand.Cards(),
			Value:       s.hand.Value(),
			Soft:        s.hand.IsSoft(),
			Bet:         s.bet,
			SplitAces:   s.splitAces,
			Doubled:     s.doubled,
			Surrendered: s.surrendered,
			Busted:      s.hand.IsBusted(),
		}
	}
	return out
}

// DealerCards returns the dealer's cards in deal order. While the hole card is
// still face down only the up-card is returned.
func (r *Round) DealerCards() []cards.Card {
	cs := r.dealer.Cards()
	if !r.holeRevealed && len(cs) > 1 {
		return cs[:1]
	}
	return cs
}

// DealerUpCard reports the face-up card once the deal is done.
func (r *Round) DealerUpCard() (cards.Card, bool) {
	if r.dealer.Len() == 0 {
		return 0, false
	}
	return r.dealer.Card(0), true
}

// emit stamps e and hands it to every sink. A panicking sink is recorded and
// does not interrupt the round or the other sinks.
func (r *Round) emit(e types.Event) {
	r.seq++
	e.Round = r.id
	e.Seq = r.seq
	for _, s := range r.sinks {
		r.deliver(s, e)
	}
}

func (r *Round) deliver(s types.EventSink, e types.Event) {
	defer func() {
		if rec := recover(); rec != nil && r.sinkErr == nil {
			r.sinkErr = fmt.Errorf("event sink panicked on %s (seq %d): %v", e.Type, e.Seq, rec)
		}
	}()
	s(e)
}

func (r *Round) requirePhase(want types.Phase) error {
	if r.phase != want {
		return types.ErrWrongPhase.Wrapf("need %s, round is in %s", want, r.phase)
	}
	return nil
}

func (r *Round) currentSlot() *handSlot {
	return r.hands[r.current]
}

func (r *Round) draw() cards.Card {
	return r.shoe.Draw()
}

func (r *Round) dealToPlayer(idx int) cards.Card {
	c := r.draw()
	r.hands[idx].hand.Add(c)
	r.emit(types.Event{
		Type:      types.EventTypeCardDealt,
		Who:       types.Player,
		HandIndex: idx,
		Card:      c,
		Remaining: r.shoe.Remaining(),
	})
	return c
}

func (r *Round) dealToDealer(faceDown bool) cards.Card {
	c := r.draw()
	r.dealer.Add(c)
	r.emit(types.Event{
		Type:      types.EventTypeCardDealt,
		Who:       types.Dealer,
		Card:      c,
		FaceDown:  faceDown,
		Remaining: r.shoe.Remaining(),
	})
	return c
}
