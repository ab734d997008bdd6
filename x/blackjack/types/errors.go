package types

import errorsmod "cosmossdk.io/errors"

// x/blackjack sentinel errors.
var (
	ErrInvalidRequest  = errorsmod.Register(ModuleName, 1, "invalid request")
	ErrInvalidRules    = errorsmod.Register(ModuleName, 2, "invalid rules")
	ErrInvalidSettings = errorsmod.Register(ModuleName, 3, "invalid settings")
	ErrWrongPhase      = errorsmod.Register(ModuleName, 4, "operation not valid in current phase")
	ErrNotEligible     = errorsmod.Register(ModuleName, 5, "action not eligible")
	ErrInvalidAmount   = errorsmod.Register(ModuleName, 6, "invalid amount")
	ErrRoundInProgress = errorsmod.Register(ModuleName, 7, "round already in progress")
)
