package persistence

import (
	"context"

	"luckyten/internal/domain/entity"
)

// LedgerRepository owns the atomic settlement operation of the ledger store.
// Committing a settlement applies the balance delta and appends the history
// record as one indivisible unit: on any failure neither is visible.
type LedgerRepository interface {
	// CommitSettlement atomically applies the settlement's delta to the
	// player's balance and inserts the settlement record. Settlements for
	// the same player serialize on the player row; different players
	// proceed in parallel. The funds check is repeated inside the atomic
	// unit so a concurrent settlement can never overdraw the balance.
	// Returns the player with the post-settlement balance.
	//
	// Possible errors:
	// - ErrPlayerNotFound: If the referenced player doesn't exist
	// - ErrInsufficientFunds: If the delta would take the balance below zero
	// - ErrDatabaseConnection: If the store is unreachable; no partial write remains
	CommitSettlement(ctx context.Context, settlement *entity.Settlement) (*entity.Player, error)

	// ListByPlayer returns the player's settlement history, oldest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the store is unreachable
	ListByPlayer(ctx context.Context, playerID uint64) ([]*entity.Settlement, error)
}
