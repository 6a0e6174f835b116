package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luckyten/internal/domain/entity"
	domainerr "luckyten/internal/domain/error"
	coreport "luckyten/internal/domain/port/core"
	"luckyten/internal/domain/port/usecase"
	"luckyten/internal/infrastructure/adapter/api/dto"
	"luckyten/internal/infrastructure/adapter/api/middleware"
)

// BetHandler handles wager-related HTTP requests
type BetHandler struct {
	betUseCase usecase.BetUseCase
	logger     coreport.Logger
}

// NewBetHandler creates a new bet handler instance
func NewBetHandler(betUseCase usecase.BetUseCase, logger coreport.Logger) *BetHandler {
	return &BetHandler{
		betUseCase: betUseCase,
		logger:     logger,
	}
}

// PlaceWager handles the POST /api/bets endpoint. The player identity
// comes from the bearer token, never from the request body.
func (h *BetHandler) PlaceWager(c *gin.Context) {
	playerID, ok := middleware.AuthenticatedPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
			Message: "Missing authenticated player",
		})
		return
	}

	var req dto.WagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidWager),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	outcome, err := h.betUseCase.PlaceWager(c.Request.Context(), entity.Wager{
		PlayerID:     playerID,
		ChosenNumber: req.Number,
		Stake:        req.Stake,
	})
	if err != nil {
		h.writeWagerError(c, playerID, err)
		return
	}

	s := outcome.Settlement
	c.JSON(http.StatusOK, dto.SettlementResponse{
		SettlementID: s.ID,
		ChosenNumber: s.ChosenNumber,
		DrawnNumber:  s.DrawnNumber,
		Stake:        s.Stake,
		Delta:        s.Delta,
		Result:       string(s.Result),
		Balance:      outcome.Balance,
		SettledAt:    s.CreatedAt,
	})
}

// writeWagerError maps resolver errors to HTTP responses
func (h *BetHandler) writeWagerError(c *gin.Context, playerID uint64, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrNumberOutOfRange):
		statusCode = http.StatusBadRequest
		errorMessage = "Chosen number must be between 0 and 9"
	case errors.Is(err, domainerr.ErrInvalidStake):
		statusCode = http.StatusBadRequest
		errorMessage = "Stake must be a positive amount"
	case errors.Is(err, domainerr.ErrInsufficientFunds):
		statusCode = http.StatusUnprocessableEntity
		errorMessage = "Insufficient balance for this stake"
	case errors.Is(err, domainerr.ErrPlayerNotFound):
		statusCode = http.StatusNotFound
		errorMessage = "Player not found"
	}

	if statusCode == http.StatusInternalServerError {
		h.logger.Error("Error settling wager", map[string]any{
			"playerId": playerID,
			"error":    err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: errorMessage,
	})
}
