package entity

import (
	"time"

	errs "luckyten/internal/domain/error"
	coreport "luckyten/internal/domain/port/core"
)

// Player represents a player account with a point balance
type Player struct {
	ID             uint64    // Unique identifier, assigned by the ledger store on creation
	Login          string    // Unique login, case-sensitive, immutable
	CredentialHash string    // One-way hash of the player's secret, never plaintext
	balance        int64     // Point balance, mutated only through committed settlements (private)
	CreatedAt      time.Time // When the account was created
	UpdatedAt      time.Time // When the balance was last updated
}

// NewPlayer creates a new player with the given login, credential hash and
// starting balance
func NewPlayer(login, credentialHash string, startingBalance int64, timeProvider coreport.TimeProvider) (*Player, error) {
	if login == "" || credentialHash == "" {
		return nil, errs.ErrInvalidCredentials
	}

	now := timeProvider.Now()
	return &Player{
		Login:          login,
		CredentialHash: credentialHash,
		balance:        startingBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Balance returns the current point balance
func (p *Player) Balance() int64 {
	return p.balance
}

// SetBalance overwrites the balance directly (for internal use by repositories)
func (p *Player) SetBalance(balance int64, timeProvider coreport.TimeProvider) {
	p.balance = balance
	p.UpdatedAt = timeProvider.Now()
}

// CanCover reports whether the balance covers the given stake
func (p *Player) CanCover(stake int64) bool {
	return p.balance >= stake
}

// ApplyDelta applies a settlement delta to the balance. A delta that would
// take the balance below zero is rejected so a lost wager can never overdraw
// the account.
func (p *Player) ApplyDelta(delta int64, timeProvider coreport.TimeProvider) error {
	if p.balance+delta < 0 {
		return errs.ErrInsufficientFunds
	}

	p.balance += delta
	p.UpdatedAt = timeProvider.Now()
	return nil
}
