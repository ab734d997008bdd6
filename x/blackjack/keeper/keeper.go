package keeper

import (
	"cosmossdk.io/log"

	"monoblackjack/internal/cards"
	"monoblackjack/x/blackjack/types"
)

// Keeper owns one table session: the rules in force, the shoe they shape, the
// player's bankroll and the event subscribers. It hands out one Round at a
// time.
type Keeper struct {
	rules    types.Rules
	shoe     *cards.Shoe
	bankroll *types.Bankroll
	logger   log.Logger
	sinks    []types.EventSink

	lastRound uint64
	active    *Round
}

// NewKeeper builds the shoe from rules. A nil bankroll starts a fresh one at
// the configured starting balance; a nil logger discards output.
func NewKeeper(rules types.Rules, bankroll *types.Bankroll, logger log.Logger) (*Keeper, error) {
	if !rules.Valid() {
		return nil, types.ErrInvalidRules.Wrap("rules were not built by NewRules")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if bankroll == nil {
		b, err := types.NewBankroll("player", rules.StartingBankroll())
		if err != nil {
			return nil, err
		}
		bankroll = b
	}
	shoe, err := NewShoe(rules)
	if err != nil {
		return nil, err
	}
	return &Keeper{
		rules:    rules,
		shoe:     shoe,
		bankroll: bankroll,
		logger:   logger.With("module", "x/"+types.ModuleName),
	}, nil
}

// NewShoe builds a shoe shaped by rules with the configured random source.
func NewShoe(rules types.Rules) (*cards.Shoe, error) {
	var src cards.Source
	switch rules.ShuffleMode() {
	case types.ShuffleSeeded:
		src = cards.NewSeededSource(rules.ShuffleSeed())
	default:
		src = cards.NewCryptoSource()
	}
	shoe, err := cards.NewShoe(rules.DeckCount(), rules.PenetrationPercent(), src)
	if err != nil {
		return nil, types.ErrInvalidRules.Wrap(err.Error())
	}
	return shoe, nil
}

func (k *Keeper) Logger() log.Logger        { return k.logger }
func (k *Keeper) Rules() types.Rules        { return k.rules }
func (k *Keeper) Shoe() *cards.Shoe         { return k.shoe }
func (k *Keeper) Bankroll() *types.Bankroll { return k.bankroll }
func (k *Keeper) LastRoundID() uint64       { return k.lastRound }
func (k *Keeper) ActiveRound() *Round       { return k.active }

// Subscribe adds a sink that receives the events of every later round.
func (k *Keeper) Subscribe(s types.EventSink) {
	if s != nil {
		k.sinks = append(k.sinks, s)
	}
}

func (k *Keeper) inProgress() bool {
	return k.active != nil && !k.active.Done()
}

// SetRules swaps the rules between rounds. The shoe is rebuilt only when the
// deck count, penetration or shuffle source changes.
func (k *Keeper) SetRules(rules types.Rules) error {
	if !rules.Valid() {
		return types.ErrInvalidRules.Wrap("rules were not built by NewRules")
	}
	if k.inProgress() {
		return types.ErrRoundInProgress.Wrapf("round %d", k.active.ID())
	}
	if !rules.ShoeShapeEqual(k.rules) {
		shoe, err := NewShoe(rules)
		if err != nil {
			return err
		}
		k.shoe = shoe
		k.logger.Info("shoe rebuilt", "decks", rules.DeckCount(), "penetration", rules.PenetrationPercent(), "shuffle", string(rules.ShuffleMode()))
	}
	k.rules = rules
	return nil
}

// NewRound opens the next round. It fails while the previous one is still
// being played.
func (k *Keeper) NewRound() (*Round, error) {
	if k.inProgress() {
		return nil, types.ErrRoundInProgress.Wrapf("round %d", k.active.ID())
	}
	id := k.lastRound + 1
	sinks := make([]types.EventSink, 0, len(k.sinks)+1)
	sinks = append(sinks, k.logEvent)
	sinks = append(sinks, k.sinks...)
	r, err := NewRound(id, k.rules, k.shoe, k.bankroll, sinks...)
	if err != nil {
		return nil, err
	}
	k.lastRound = id
	k.active = r
	return r, nil
}

// FinishRound logs the settled round and releases it. A sink failure during
// the round is returned so it cannot pass unnoticed.
func (k *Keeper) FinishRound(r *Round) error {
	if r == nil || r != k.active {
		return types.ErrInvalidRequest.Wrap("round is not the keeper's active round")
	}
	if !r.Done() {
		return types.ErrWrongPhase.Wrapf("round %d is in %s", r.ID(), r.Phase())
	}
	k.logger.Info("round complete",
		"round", r.ID(),
		"bet", types.FormatAmount(r.Bet()),
		"net", types.FormatAmount(r.Net()),
		"balance", types.FormatAmount(k.bankroll.Balance()),
		"shoe_remaining", k.shoe.Remaining(),
	)
	k.active = nil
	if err := r.SinkErr(); err != nil {
		k.logger.Error("event sink failed", "round", r.ID(), "err", err)
		return types.ErrInvalidRequest.Wrapf("round %d: %v", r.ID(), err)
	}
	return nil
}

func (k *Keeper) logEvent(e types.Event) {
	k.logger.Debug("round event", e.KeyVals()...)
}

// SetLastRoundID continues round numbering after id, so a resumed session
// does not reuse ids already recorded.
func (k *Keeper) SetLastRoundID(id uint64) error {
	if k.inProgress() {
		return types.ErrRoundInProgress.Wrapf("round %d", k.active.ID())
	}
	k.lastRound = id
	return nil
}
