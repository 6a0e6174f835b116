package usecase

import (
	"context"

	"luckyten/internal/domain/entity"
)

// WagerOutcome is the result of a committed settlement: the immutable
// settlement record plus the post-settlement balance
type WagerOutcome struct {
	Settlement *entity.Settlement
	Balance    int64
}

// BetUseCase defines the bet resolution operation
type BetUseCase interface {
	// PlaceWager validates the wager, draws an outcome and commits the
	// settlement atomically. Rejections (bad number, bad stake, unknown
	// player, insufficient funds) return a typed error and produce no
	// settlement and no balance change.
	PlaceWager(ctx context.Context, wager entity.Wager) (*WagerOutcome, error)
}
