package dto

import "time"

// WagerRequest represents the API request for placing a wager. The number
// and stake ranges are re-validated by the resolver; the binding tags only
// reject obviously malformed payloads early.
type WagerRequest struct {
	Number int   `json:"number"`
	Stake  int64 `json:"stake" binding:"required"`
}

// SettlementResponse represents the API response for a settled wager
type SettlementResponse struct {
	SettlementID uint64    `json:"settlementId"`
	ChosenNumber int       `json:"chosenNumber"`
	DrawnNumber  int       `json:"drawnNumber"`
	Stake        int64     `json:"stake"`
	Delta        int64     `json:"delta"`
	Result       string    `json:"result"`
	Balance      int64     `json:"balance"`
	SettledAt    time.Time `json:"settledAt"`
}

// SettlementHistoryResponse represents the API response for a player's
// settlement history
type SettlementHistoryResponse struct {
	PlayerID    uint64               `json:"playerId"`
	Settlements []SettlementResponse `json:"settlements"`
}
