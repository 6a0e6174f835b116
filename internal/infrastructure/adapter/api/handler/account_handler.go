package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "luckyten/internal/domain/error"
	coreport "luckyten/internal/domain/port/core"
	"luckyten/internal/domain/port/usecase"
	"luckyten/internal/infrastructure/adapter/api/dto"
	"luckyten/internal/infrastructure/adapter/api/middleware"
	"luckyten/internal/infrastructure/adapter/token"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	tokenIssuer    *token.Issuer
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(
	accountUseCase usecase.AccountUseCase,
	tokenIssuer *token.Issuer,
	logger coreport.Logger,
) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

// CreatePlayer handles the POST /api/players endpoint
func (h *AccountHandler) CreatePlayer(c *gin.Context) {
	var req dto.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	player, err := h.accountUseCase.CreatePlayer(c.Request.Context(), req.Login, req.Secret)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		switch {
		case errors.Is(err, domainerr.ErrDuplicateLogin):
			statusCode = http.StatusConflict
			errorMessage = "Login already taken"
		case errors.Is(err, domainerr.ErrInvalidCredentials):
			statusCode = http.StatusBadRequest
			errorMessage = "Login and secret must not be empty"
		}

		h.logger.Error("Error creating player", map[string]any{
			"login": req.Login,
			"error": err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.PlayerResponse{
		PlayerID: player.ID,
		Login:    player.Login,
		Balance:  player.Balance(),
	})
}

// Login handles the POST /api/login endpoint
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	playerID, err := h.accountUseCase.Authenticate(c.Request.Context(), req.Login, req.Secret)
	if err != nil {
		// Unknown login and wrong secret both come back as not found so
		// the response never reveals which one failed
		if errors.Is(err, domainerr.ErrPlayerNotFound) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid login or secret",
			})
			return
		}

		h.logger.Error("Error authenticating player", map[string]any{
			"login": req.Login,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	signed, expiresAt, err := h.tokenIssuer.Issue(playerID, req.Login)
	if err != nil {
		h.logger.Error("Error issuing session token", map[string]any{
			"playerId": playerID,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
	})
}

// GetBalance handles the GET /api/players/{playerId}/balance endpoint
func (h *AccountHandler) GetBalance(c *gin.Context) {
	playerID, ok := h.authorizedPlayerID(c)
	if !ok {
		return
	}

	balanceResponse, err := h.accountUseCase.GetBalance(c.Request.Context(), playerID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		if errors.Is(err, domainerr.ErrPlayerNotFound) {
			statusCode = http.StatusNotFound
			errorMessage = "Player not found"
		}

		h.logger.Error("Error getting player balance", map[string]any{
			"playerId": playerID,
			"error":    err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		PlayerID: balanceResponse.PlayerID,
		Balance:  balanceResponse.Balance,
	})
}

// ListSettlements handles the GET /api/players/{playerId}/bets endpoint
func (h *AccountHandler) ListSettlements(c *gin.Context) {
	playerID, ok := h.authorizedPlayerID(c)
	if !ok {
		return
	}

	settlements, err := h.accountUseCase.ListSettlements(c.Request.Context(), playerID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		if errors.Is(err, domainerr.ErrPlayerNotFound) {
			statusCode = http.StatusNotFound
			errorMessage = "Player not found"
		}

		h.logger.Error("Error listing settlements", map[string]any{
			"playerId": playerID,
			"error":    err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	response := dto.SettlementHistoryResponse{
		PlayerID:    playerID,
		Settlements: make([]dto.SettlementResponse, 0, len(settlements)),
	}
	for _, s := range settlements {
		response.Settlements = append(response.Settlements, dto.SettlementResponse{
			SettlementID: s.ID,
			ChosenNumber: s.ChosenNumber,
			DrawnNumber:  s.DrawnNumber,
			Stake:        s.Stake,
			Delta:        s.Delta,
			Result:       string(s.Result),
			SettledAt:    s.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// DeletePlayer handles the DELETE /api/players/{playerId} endpoint.
// A player can only remove their own account.
func (h *AccountHandler) DeletePlayer(c *gin.Context) {
	playerID, ok := h.authorizedPlayerID(c)
	if !ok {
		return
	}

	if err := h.accountUseCase.DeletePlayer(c.Request.Context(), playerID); err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		if errors.Is(err, domainerr.ErrPlayerNotFound) {
			statusCode = http.StatusNotFound
			errorMessage = "Player not found"
		}

		h.logger.Error("Error deleting player", map[string]any{
			"playerId": playerID,
			"error":    err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// parsePlayerID extracts and validates the playerId path parameter,
// writing a 400 response on failure
func parsePlayerID(c *gin.Context) (uint64, bool) {
	playerIDParam := c.Param("playerId")
	playerID, err := strconv.ParseUint(playerIDParam, 10, 64)
	if err != nil || playerID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrPlayerNotFound),
			Message: "Invalid player ID format",
		})
		return 0, false
	}
	return playerID, true
}

// authorizedPlayerID extracts the playerId path parameter and verifies it
// matches the authenticated token identity. A valid token only grants
// access to its own player's resources.
func (h *AccountHandler) authorizedPlayerID(c *gin.Context) (uint64, bool) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return 0, false
	}

	authenticatedID, ok := middleware.AuthenticatedPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
			Message: "Missing authenticated player",
		})
		return 0, false
	}

	if authenticatedID != playerID {
		h.logger.Warn("Cross-player access denied", map[string]any{
			"authenticated_id": authenticatedID,
			"requested_id":     playerID,
			"path":             c.Request.URL.Path,
		})
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
			Message: "Token does not grant access to this player",
		})
		return 0, false
	}

	return playerID, true
}
