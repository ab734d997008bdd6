package types

import sdkmath "cosmossdk.io/math"

// Bankroll is the player's balance holder. It is owned by the caller; a round
// changes it only by applying payouts.
type Bankroll struct {
	Name    string
	balance sdkmath.LegacyDec
}

func NewBankroll(name string, balance sdkmath.LegacyDec) (*Bankroll, error) {
	if !ValidAmount(balance) {
		return nil, ErrInvalidAmount.Wrap("bankroll balance is nil")
	}
	if balance.IsNegative() {
		return nil, ErrInvalidAmount.Wrapf("bankroll balance must be >= 0, got %s", FormatAmount(balance))
	}
	return &Bankroll{Name: name, balance: balance}, nil
}

func (b *Bankroll) Balance() sdkmath.LegacyDec {
	return b.balance
}

// Apply adds a signed payout to the balance.
func (b *Bankroll) Apply(delta sdkmath.LegacyDec) {
	b.balance = b.balance.Add(delta)
}
