package analytics

import (
	"errors"
	"fmt"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	"monoblackjack/x/blackjack/types"
)

// Recorder folds a round's event stream into a RoundSummary and saves it when
// the round completes. Use Observe as an event sink.
type Recorder struct {
	store  *Store
	logger log.Logger

	cur   *roundBuilder
	last  *RoundSummary
	errs  []error
	saved int
}

type roundBuilder struct {
	sum      RoundSummary
	bets     map[int]sdkmath.LegacyDec
	doubled  map[int]bool
	busted   map[int]bool
	holeSeen int // index into sum.Cards, -1 when no hole card is pending
}

// NewRecorder saves into store; a nil store only keeps the latest summary in
// memory.
func NewRecorder(store *Store, logger log.Logger) *Recorder {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Recorder{store: store, logger: logger.With("module", "analytics")}
}

// Err joins every failure to persist a summary so far.
func (r *Recorder) Err() error {
	return errors.Join(r.errs...)
}

// Last is the most recently completed summary.
func (r *Recorder) Last() *RoundSummary { return r.last }

// Saved counts summaries written to the store.
func (r *Recorder) Saved() int { return r.saved }

func (r *Recorder) Observe(e types.Event) {
	if e.Type == types.EventTypeBetPlaced {
		r.begin(e)
		return
	}
	b := r.cur
	if b == nil || b.sum.Round != e.Round {
		// Joined mid-round; wait for the next bet.
		return
	}

	switch e.Type {
	case types.EventTypeShoeReshuffled:
		b.sum.Reshuffled = true

	case types.EventTypeCardDealt:
		b.sum.Cards = append(b.sum.Cards, CardSeen{
			Card:     e.Card.String(),
			Who:      e.Who,
			Hand:     e.HandIndex,
			FaceDown: e.FaceDown,
		})
		if e.Who == types.Dealer && b.sum.DealerUp == "" {
			b.sum.DealerUp = e.Card.String()
		}
		if e.FaceDown {
			b.holeSeen = len(b.sum.Cards) - 1
		}

	case types.EventTypeHoleCardRevealed:
		if b.holeSeen >= 0 {
			c := &b.sum.Cards[b.holeSeen]
			c.Who = types.Dealer
			c.Card = e.Card.String()
			c.Revealed = true
			b.holeSeen = -1
		} else {
			b.sum.Cards = append(b.sum.Cards, CardSeen{Card: e.Card.String(), Who: types.Dealer, Revealed: true})
		}

	case types.EventTypePlayerHit:
		b.decide(e, ActionHit)
	case types.EventTypePlayerStood:
		b.decide(e, ActionStand)
	case types.EventTypePlayerDoubled:
		b.decide(e, ActionDouble)
		b.bets[e.HandIndex] = e.Amount
		b.doubled[e.HandIndex] = true
	case types.EventTypePlayerSplit:
		b.decide(e, ActionSplit)
		b.bets[e.SplitIndex] = e.Amount
	case types.EventTypePlayerSurrendered:
		b.decide(e, ActionSurrender)
	case types.EventTypeInsurancePlaced:
		b.decide(e, ActionInsure)
	case types.EventTypeInsuranceDeclined:
		b.decide(e, ActionNoInsure)

	case types.EventTypePlayerBusted:
		b.busted[e.HandIndex] = true

	case types.EventTypeInsuranceResult:
		b.sum.Insurance = e.Amount

	case types.EventTypeDealerBusted, types.EventTypeDealerStood:
		b.sum.Dealer = e.Value

	case types.EventTypeHandResolved:
		b.resolve(e)

	case types.EventTypeRoundComplete:
		b.sum.Net = e.Amount
		r.complete()
	}
}

func (r *Recorder) begin(e types.Event) {
	if r.cur != nil {
		r.logger.Error("round summary abandoned before completion", "round", r.cur.sum.Round)
	}
	r.cur = &roundBuilder{
		sum: RoundSummary{
			Round:     e.Round,
			Bet:       e.Amount,
			Insurance: sdkmath.LegacyZeroDec(),
			Net:       sdkmath.LegacyZeroDec(),
		},
		bets:     map[int]sdkmath.LegacyDec{0: e.Amount},
		doubled:  map[int]bool{},
		busted:   map[int]bool{},
		holeSeen: -1,
	}
}

func (b *roundBuilder) decide(e types.Event, a Action) {
	b.sum.Decisions = append(b.sum.Decisions, Decision{
		Hand:     e.HandIndex,
		Value:    e.Value,
		Soft:     e.Soft,
		DealerUp: b.sum.DealerUp,
		Action:   a,
	})
}

func (b *roundBuilder) resolve(e types.Event) {
	bet, ok := b.bets[e.HandIndex]
	if !ok {
		bet = sdkmath.LegacyZeroDec()
	}
	b.sum.Hands = append(b.sum.Hands, HandSummary{
		Index:   e.HandIndex,
		Bet:     bet,
		Value:   e.Value,
		Outcome: e.Outcome,
		Payout:  e.Amount,
		Doubled: b.doubled[e.HandIndex],
		Busted:  b.busted[e.HandIndex],
	})
	for i := range b.sum.Decisions {
		if b.sum.Decisions[i].Hand == e.HandIndex && b.sum.Decisions[i].Outcome == "" {
			b.sum.Decisions[i].Outcome = e.Outcome
		}
	}
}

func (r *Recorder) complete() {
	b := r.cur
	r.cur = nil
	total := sdkmath.LegacyZeroDec()
	for _, h := range b.sum.Hands {
		total = total.Add(h.Bet)
	}
	b.sum.Bet = total
	sum := b.sum
	r.last = &sum

	if r.store == nil {
		return
	}
	if err := r.store.SaveRound(&sum); err != nil {
		err = fmt.Errorf("save round %d: %w", sum.Round, err)
		r.errs = append(r.errs, err)
		r.logger.Error("analytics write failed", "round", sum.Round, "err", err)
		return
	}
	r.saved++
}
