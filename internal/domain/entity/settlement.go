package entity

import (
	"time"

	errs "luckyten/internal/domain/error"
	coreport "luckyten/internal/domain/port/core"
)

// SettlementResult represents the outcome of a resolved wager
type SettlementResult string

// Settlement results
const (
	ResultWon  SettlementResult = "won"
	ResultLost SettlementResult = "lost"
)

// Wager is the ephemeral input to bet resolution. It is never persisted on
// its own; only the settlement derived from it is.
type Wager struct {
	PlayerID     uint64
	ChosenNumber int
	Stake        int64
}

// Settlement is the immutable record of a resolved wager. The drawn number
// is stored alongside the derived delta and result so the fairness of a
// settlement can be audited from history alone.
type Settlement struct {
	ID           uint64           // Unique identifier, assigned at creation
	PlayerID     uint64           // Owning player, enforced to exist before creation
	ChosenNumber int              // The digit the player predicted
	DrawnNumber  int              // The digit the outcome generator produced
	Stake        int64            // Points staked on the prediction
	Delta        int64            // Signed balance change: +stake*multiplier on win, -stake on loss
	Result       SettlementResult // won or lost
	CreatedAt    time.Time        // When the wager was settled
}

// NewSettlement resolves a wager against a drawn number and builds the
// settlement record. The delta is +stake*winMultiplier when the drawn number
// matches the chosen one, -stake otherwise.
func NewSettlement(wager Wager, drawnNumber int, winMultiplier int64, timeProvider coreport.TimeProvider) (*Settlement, error) {
	if wager.PlayerID == 0 {
		return nil, errs.ErrPlayerNotFound
	}
	if wager.Stake <= 0 {
		return nil, errs.ErrInvalidStake
	}

	s := &Settlement{
		PlayerID:     wager.PlayerID,
		ChosenNumber: wager.ChosenNumber,
		DrawnNumber:  drawnNumber,
		Stake:        wager.Stake,
		CreatedAt:    timeProvider.Now(),
	}

	if drawnNumber == wager.ChosenNumber {
		s.Delta = wager.Stake * winMultiplier
		s.Result = ResultWon
	} else {
		s.Delta = -wager.Stake
		s.Result = ResultLost
	}

	return s, nil
}

// Won reports whether the settlement was a winning one
func (s *Settlement) Won() bool {
	return s.Result == ResultWon
}
