package types

import (
	sdkmath "cosmossdk.io/math"
)

type ShuffleMode string

const (
	// ShuffleSeeded uses a reproducible generator for replays and tests.
	ShuffleSeeded ShuffleMode = "seeded"
	// ShuffleCrypto uses crypto/rand for live play.
	ShuffleCrypto ShuffleMode = "crypto"
)

// DoublePolicy restricts which two-card totals may double down.
type DoublePolicy string

const (
	DoubleAnyTwo       DoublePolicy = "any"
	DoubleNineToEleven DoublePolicy = "9-11"
	DoubleTenToEleven  DoublePolicy = "10-11"
)

type PlayMode string

const (
	PlayWagered PlayMode = "wagered"
	PlayFree    PlayMode = "free"
)

const (
	MinDeckCount   = 1
	MaxDeckCount   = 1000
	MinPenetration = 1
	MaxPenetration = 100
	MinMaxSplits   = 1
	MaxMaxSplits   = 10
)

// Params is the plain bundle of house-rule variations. Build a Rules value
// from it with NewRules; Params itself carries no validity guarantee.
type Params struct {
	DeckCount          int
	PenetrationPercent int
	ShuffleMode        ShuffleMode
	ShuffleSeed        uint64
	StartingBankroll   sdkmath.LegacyDec
	DealerHitsSoft17   bool
	BlackjackPayout    sdkmath.LegacyDec
	DoubleAfterSplit   bool
	DoublePolicy       DoublePolicy
	ResplitAces        bool
	MaxSplits          int
	EarlySurrender     bool
	LateSurrender      bool
	MinimumBet         sdkmath.LegacyDec
	MaximumBet         sdkmath.LegacyDec
	PlayMode           PlayMode
}

func DefaultParams() Params {
	return Params{
		DeckCount:          6,
		PenetrationPercent: 75,
		ShuffleMode:        ShuffleCrypto,
		StartingBankroll:   sdkmath.LegacyNewDec(1000),
		DealerHitsSoft17:   false,
		BlackjackPayout:    sdkmath.LegacyNewDecWithPrec(15, 1), // 3:2
		DoubleAfterSplit:   true,
		DoublePolicy:       DoubleAnyTwo,
		ResplitAces:        false,
		MaxSplits:          3,
		EarlySurrender:     false,
		LateSurrender:      true,
		MinimumBet:         sdkmath.LegacyNewDec(5),
		MaximumBet:         sdkmath.LegacyNewDec(500),
		PlayMode:           PlayWagered,
	}
}

func (p Params) Validate() error {
	if p.DeckCount < MinDeckCount || p.DeckCount > MaxDeckCount {
		return ErrInvalidRules.Wrapf("deck_count must be in [%d,%d], got %d", MinDeckCount, MaxDeckCount, p.DeckCount)
	}
	if p.PenetrationPercent < MinPenetration || p.PenetrationPercent > MaxPenetration {
		return ErrInvalidRules.Wrapf("penetration_percent must be in [%d,%d], got %d", MinPenetration, MaxPenetration, p.PenetrationPercent)
	}
	switch p.ShuffleMode {
	case ShuffleSeeded, ShuffleCrypto:
	default:
		return ErrInvalidRules.Wrapf("unknown shuffle_mode %q", p.ShuffleMode)
	}
	if !ValidAmount(p.StartingBankroll) || p.StartingBankroll.IsNegative() {
		return ErrInvalidRules.Wrap("starting_bankroll must be >= 0")
	}
	if !ValidAmount(p.BlackjackPayout) || !p.BlackjackPayout.IsPositive() {
		return ErrInvalidRules.Wrap("blackjack_payout must be > 0")
	}
	switch p.DoublePolicy {
	case DoubleAnyTwo, DoubleNineToEleven, DoubleTenToEleven:
	default:
		return ErrInvalidRules.Wrapf("unknown double_policy %q", p.DoublePolicy)
	}
	if p.MaxSplits < MinMaxSplits || p.MaxSplits > MaxMaxSplits {
		return ErrInvalidRules.Wrapf("max_splits must be in [%d,%d], got %d", MinMaxSplits, MaxMaxSplits, p.MaxSplits)
	}
	if p.EarlySurrender && p.LateSurrender {
		return ErrInvalidRules.Wrap("early_surrender and late_surrender are mutually exclusive")
	}
	if !ValidAmount(p.MinimumBet) || p.MinimumBet.IsNegative() {
		return ErrInvalidRules.Wrap("minimum_bet must be >= 0")
	}
	if !ValidAmount(p.MaximumBet) || p.MaximumBet.LT(p.MinimumBet) {
		return ErrInvalidRules.Wrap("maximum_bet must be >= minimum_bet")
	}
	switch p.PlayMode {
	case PlayWagered, PlayFree:
	default:
		return ErrInvalidRules.Wrapf("unknown play_mode %q", p.PlayMode)
	}
	return nil
}

// Rules is a validated, immutable set of house rules. The zero value is not
// usable; obtain one from NewRules, DefaultRules or RulesFromSettings.
type Rules struct {
	p     Params
	valid bool
}

func NewRules(p Params) (Rules, error) {
	if err := p.Validate(); err != nil {
		return Rules{}, err
	}
	return Rules{p: p, valid: true}, nil
}

func DefaultRules() Rules {
	r, err := NewRules(DefaultParams())
	if err != nil {
		panic(err)
	}
	return r
}

// With returns a new Rules built from a copy of r's params after edit.
// r is left unchanged.
func (r Rules) With(edit func(*Params)) (Rules, error) {
	p := r.p
	edit(&p)
	return NewRules(p)
}

// Params returns a copy of the underlying params.
func (r Rules) Params() Params { return r.p }

// Valid reports whether r came from a constructor.
func (r Rules) Valid() bool { return r.valid }

func (r Rules) DeckCount() int                      { return r.p.DeckCount }
func (r Rules) PenetrationPercent() int             { return r.p.PenetrationPercent }
func (r Rules) ShuffleMode() ShuffleMode            { return r.p.ShuffleMode }
func (r Rules) ShuffleSeed() uint64                 { return r.p.ShuffleSeed }
func (r Rules) StartingBankroll() sdkmath.LegacyDec { return r.p.StartingBankroll }
func (r Rules) DealerHitsSoft17() bool              { return r.p.DealerHitsSoft17 }
func (r Rules) BlackjackPayout() sdkmath.LegacyDec  { return r.p.BlackjackPayout }
func (r Rules) DoubleAfterSplit() bool              { return r.p.DoubleAfterSplit }
func (r Rules) DoublePolicy() DoublePolicy          { return r.p.DoublePolicy }
func (r Rules) ResplitAces() bool                   { return r.p.ResplitAces }
func (r Rules) MaxSplits() int                      { return r.p.MaxSplits }
func (r Rules) EarlySurrender() bool                { return r.p.EarlySurrender }
func (r Rules) LateSurrender() bool                 { return r.p.LateSurrender }
func (r Rules) MinimumBet() sdkmath.LegacyDec       { return r.p.MinimumBet }
func (r Rules) MaximumBet() sdkmath.LegacyDec       { return r.p.MaximumBet }
func (r Rules) PlayMode() PlayMode                  { return r.p.PlayMode }
func (r Rules) FreePlay() bool                      { return r.p.PlayMode == PlayFree }

// DoubleAllowedOn reports whether a two-card total may double under the
// configured policy.
func (r Rules) DoubleAllowedOn(total int) bool {
	switch r.p.DoublePolicy {
	case DoubleNineToEleven:
		return total >= 9 && total <= 11
	case DoubleTenToEleven:
		return total >= 10 && total <= 11
	default:
		return true
	}
}

// ShoeShapeEqual reports whether two rule sets build the same shoe.
func (r Rules) ShoeShapeEqual(o Rules) bool {
	return r.p.DeckCount == o.p.DeckCount &&
		r.p.PenetrationPercent == o.p.PenetrationPercent &&
		r.p.ShuffleMode == o.p.ShuffleMode &&
		r.p.ShuffleSeed == o.p.ShuffleSeed
}

// Equal compares every field; decimals are compared by value.
func (r Rules) Equal(o Rules) bool {
	a, b := r.p, o.p
	return r.valid == o.valid &&
		a.DeckCount == b.DeckCount &&
		a.PenetrationPercent == b.PenetrationPercent &&
		a.ShuffleMode == b.ShuffleMode &&
		a.ShuffleSeed == b.ShuffleSeed &&
		decEqual(a.StartingBankroll, b.StartingBankroll) &&
		a.DealerHitsSoft17 == b.DealerHitsSoft17 &&
		decEqual(a.BlackjackPayout, b.BlackjackPayout) &&
		a.DoubleAfterSplit == b.DoubleAfterSplit &&
		a.DoublePolicy == b.DoublePolicy &&
		a.ResplitAces == b.ResplitAces &&
		a.MaxSplits == b.MaxSplits &&
		a.EarlySurrender == b.EarlySurrender &&
		a.LateSurrender == b.LateSurrender &&
		decEqual(a.MinimumBet, b.MinimumBet) &&
		decEqual(a.MaximumBet, b.MaximumBet) &&
		a.PlayMode == b.PlayMode
}

func decEqual(a, b sdkmath.LegacyDec) bool {
	if a.IsNil() || b.IsNil() {
		return a.IsNil() == b.IsNil()
	}
	return a.Equal(b)
}
