package keeper

import (
	sdkmath "cosmossdk.io/math"

	"monoblackjack/x/blackjack/types"
)

// committed is every amount staked this round that has not been settled:
// all hand bets plus an open insurance stake.
func (r *Round) committed() sdkmath.LegacyDec {
	total := r.Bet()
	if r.insured && !r.insuranceSettled {
		total = total.Add(r.insuranceStake)
	}
	return total
}

// Bet is the total staked on the player's hands, after splits and doubles.
func (r *Round) Bet() sdkmath.LegacyDec {
	total := sdkmath.LegacyZeroDec()
	for _, s := range r.hands {
		total = total.Add(s.bet)
	}
	return total
}

// AvailableFunds is the bankroll minus everything already committed this
// round. Splits, doubles and insurance are gated on it.
func (r *Round) AvailableFunds() sdkmath.LegacyDec {
	return r.bankroll.Balance().Sub(r.committed())
}

func (r *Round) canCover(amount sdkmath.LegacyDec) bool {
	return r.AvailableFunds().GTE(amount)
}

// payoutFor is the signed bankroll change for a settled hand.
func payoutFor(o types.Outcome, bet, blackjackPayout sdkmath.LegacyDec) sdkmath.LegacyDec {
	switch o {
	case types.OutcomeBlackjack:
		return bet.Mul(blackjackPayout)
	case types.OutcomeWin:
		return bet
	case types.OutcomeLose:
		return bet.Neg()
	case types.OutcomeSurrender:
		return types.Half(bet).Neg()
	default:
		return sdkmath.LegacyZeroDec()
	}
}

// insurancePayout pays 2:1 on a dealer natural and forfeits the stake
// otherwise.
func insurancePayout(stake sdkmath.LegacyDec, dealerBlackjack bool) sdkmath.LegacyDec {
	if dealerBlackjack {
		return stake.MulInt64(2)
	}
	return stake.Neg()
}
