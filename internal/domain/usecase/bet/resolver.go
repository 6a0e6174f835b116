package bet

import (
	"context"
	"fmt"

	"luckyten/internal/domain/entity"
	errs "luckyten/internal/domain/error"
	coreport "luckyten/internal/domain/port/core"
	"luckyten/internal/domain/port/persistence"
	"luckyten/internal/domain/port/usecase"
)

// Rules holds the configurable game constants consumed by the resolver
type Rules struct {
	MinDigit      int
	MaxDigit      int
	WinMultiplier int64
}

// Resolver settles wagers. A settlement moves through
// Received -> Validated -> Drawn -> Settled, or drops to Rejected at any
// validation step. The draw happens only after funds validation, and the
// balance update plus the history insert commit as one atomic unit through
// the ledger, so a drawn outcome is never half-recorded.
type Resolver struct {
	players      persistence.PlayerRepository
	ledger       persistence.LedgerRepository
	outcomes     coreport.OutcomeGenerator
	validator    *WagerValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	rules        Rules
}

// NewResolver creates a bet resolver with an explicitly injected outcome
// generator
func NewResolver(
	players persistence.PlayerRepository,
	ledger persistence.LedgerRepository,
	outcomes coreport.OutcomeGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	rules Rules,
) *Resolver {
	return &Resolver{
		players:      players,
		ledger:       ledger,
		outcomes:     outcomes,
		validator:    NewWagerValidator(rules.MinDigit, rules.MaxDigit),
		timeProvider: timeProvider,
		logger:       logger,
		rules:        rules,
	}
}

// PlaceWager resolves a single wager end to end
func (r *Resolver) PlaceWager(ctx context.Context, wager entity.Wager) (*usecase.WagerOutcome, error) {
	// Step 1: static validation (number range, stake)
	if err := r.validator.Validate(wager); err != nil {
		r.logger.Warn("Wager rejected", map[string]any{
			"player_id":     wager.PlayerID,
			"chosen_number": wager.ChosenNumber,
			"stake":         wager.Stake,
			"error":         err.Error(),
		})
		return nil, err
	}

	// Step 2: the player must exist and the balance must cover the stake.
	// This is a pre-check for a fast rejection without touching the draw;
	// the ledger repeats it inside the atomic commit.
	player, err := r.players.GetByID(ctx, wager.PlayerID)
	if err != nil {
		if errs.IsPlayerNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load player %d: %w", wager.PlayerID, err)
	}

	if !player.CanCover(wager.Stake) {
		err := errs.NewInsufficientFundsError(wager.PlayerID, wager.Stake, player.Balance())
		r.logger.Warn("Wager rejected", map[string]any{
			"player_id": wager.PlayerID,
			"stake":     wager.Stake,
			"balance":   player.Balance(),
			"error":     err.Error(),
		})
		return nil, err
	}

	// Step 3: draw the outcome. The draw must come after funds validation
	// and commits together with the write below.
	drawn := r.outcomes.Draw(r.rules.MinDigit, r.rules.MaxDigit)

	// Step 4: settle
	settlement, err := entity.NewSettlement(wager, drawn, r.rules.WinMultiplier, r.timeProvider)
	if err != nil {
		return nil, err
	}

	updated, err := r.ledger.CommitSettlement(ctx, settlement)
	if err != nil {
		if errs.IsRejection(err) {
			// A concurrent settlement consumed the funds between the
			// pre-check and the commit; the whole unit rolled back.
			r.logger.Warn("Settlement rejected at commit", map[string]any{
				"player_id": wager.PlayerID,
				"stake":     wager.Stake,
				"error":     err.Error(),
			})
			return nil, err
		}
		r.logger.Error("Settlement commit failed", map[string]any{
			"player_id":     wager.PlayerID,
			"chosen_number": wager.ChosenNumber,
			"drawn_number":  drawn,
			"stake":         wager.Stake,
			"error":         err.Error(),
		})
		return nil, errs.NewWagerError(wager.PlayerID, wager.ChosenNumber, wager.Stake,
			"persistence failure during settlement commit", err)
	}

	r.logger.Info("Wager settled", map[string]any{
		"player_id":     wager.PlayerID,
		"settlement_id": settlement.ID,
		"chosen_number": wager.ChosenNumber,
		"drawn_number":  settlement.DrawnNumber,
		"stake":         wager.Stake,
		"delta":         settlement.Delta,
		"result":        string(settlement.Result),
		"balance":       updated.Balance(),
	})

	return &usecase.WagerOutcome{
		Settlement: settlement,
		Balance:    updated.Balance(),
	}, nil
}
