package bet

import (
	"fmt"

	"luckyten/internal/domain/entity"
	errs "luckyten/internal/domain/error"
)

// WagerValidator checks the static business rules of a wager: the chosen
// number must fall inside the playable range and the stake must be positive.
// Funds and player existence are checked later against the ledger.
type WagerValidator struct {
	minDigit int
	maxDigit int
}

// NewWagerValidator creates a validator for the given digit range
func NewWagerValidator(minDigit, maxDigit int) *WagerValidator {
	return &WagerValidator{
		minDigit: minDigit,
		maxDigit: maxDigit,
	}
}

// Validate checks all static wager fields. Validation order is stable so
// error messages are predictable; every rejection converges to "no
// settlement produced".
func (v *WagerValidator) Validate(wager entity.Wager) error {
	if wager.PlayerID == 0 {
		return errs.ErrPlayerNotFound
	}

	if wager.ChosenNumber < v.minDigit || wager.ChosenNumber > v.maxDigit {
		return fmt.Errorf("%w: %d is not between %d and %d",
			errs.ErrNumberOutOfRange, wager.ChosenNumber, v.minDigit, v.maxDigit)
	}

	if wager.Stake <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidStake, wager.Stake)
	}

	return nil
}
