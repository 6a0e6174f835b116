package persistence

import (
	"context"

	"luckyten/internal/domain/entity"
)

// PlayerRepository defines the player side of the ledger store
type PlayerRepository interface {
	// GetByID retrieves a player by ID
	//
	// Possible errors:
	// - ErrPlayerNotFound: If no player has the given ID
	// - ErrDatabaseConnection: If the store is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Player, error)

	// GetByLogin retrieves a player by exact, case-sensitive login
	//
	// Possible errors:
	// - ErrPlayerNotFound: If no player has the given login
	// - ErrDatabaseConnection: If the store is unreachable
	GetByLogin(ctx context.Context, login string) (*entity.Player, error)

	// Create persists a new player and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateLogin: If the login is already taken
	// - ErrDatabaseConnection: If the store is unreachable
	Create(ctx context.Context, player *entity.Player) error

	// Delete removes a player and all of its settlement history.
	//
	// Possible errors:
	// - ErrPlayerNotFound: If no player has the given ID
	// - ErrDatabaseConnection: If the store is unreachable
	Delete(ctx context.Context, id uint64) error
}
