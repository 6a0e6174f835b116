package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"luckyten/internal/domain/entity"
	errs "luckyten/internal/domain/error"
	"luckyten/internal/domain/port/usecase"
	"luckyten/internal/infrastructure/adapter/api/dto"
	"luckyten/internal/infrastructure/adapter/api/middleware"
	"luckyten/internal/infrastructure/adapter/logger"
	"luckyten/internal/infrastructure/adapter/token"
	"luckyten/mocks/port/core"
)

// stubBetUseCase satisfies the bet use case with a canned response
type stubBetUseCase struct {
	outcome  *usecase.WagerOutcome
	err      error
	gotWager entity.Wager
}

func (s *stubBetUseCase) PlaceWager(_ context.Context, wager entity.Wager) (*usecase.WagerOutcome, error) {
	s.gotWager = wager
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

func newTestIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(time.Now())
	issuer, err := token.NewIssuer("test-secret", time.Hour, tp)
	assert.NoError(t, err)
	return issuer
}

func newBetRouter(t *testing.T, stub *stubBetUseCase, issuer *token.Issuer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	betHandler := NewBetHandler(stub, logger.NewNoopLogger())
	router.POST("/api/bets", middleware.Auth(issuer), betHandler.PlaceWager)
	return router
}

func bearerToken(t *testing.T, issuer *token.Issuer, playerID uint64) string {
	t.Helper()
	signed, _, err := issuer.Issue(playerID, "alice")
	assert.NoError(t, err)
	return "Bearer " + signed
}

func TestBetHandler_PlaceWager(t *testing.T) {
	settledAt := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should settle a wager for the authenticated player", func(t *testing.T) {
		// Arrange
		issuer := newTestIssuer(t)
		stub := &stubBetUseCase{
			outcome: &usecase.WagerOutcome{
				Settlement: &entity.Settlement{
					ID:           7,
					PlayerID:     42,
					ChosenNumber: 5,
					DrawnNumber:  5,
					Stake:        100,
					Delta:        900,
					Result:       entity.ResultWon,
					CreatedAt:    settledAt,
				},
				Balance: 10900,
			},
		}
		router := newBetRouter(t, stub, issuer)

		body, _ := json.Marshal(dto.WagerRequest{Number: 5, Stake: 100})
		req := httptest.NewRequest(http.MethodPost, "/api/bets", bytes.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, issuer, 42))
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.SettlementResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, uint64(7), response.SettlementID)
		assert.Equal(t, 5, response.DrawnNumber)
		assert.Equal(t, int64(900), response.Delta)
		assert.Equal(t, "won", response.Result)
		assert.Equal(t, int64(10900), response.Balance)

		// The player identity comes from the token, not the body
		assert.Equal(t, uint64(42), stub.gotWager.PlayerID)
	})

	t.Run("should reject a request without a token", func(t *testing.T) {
		issuer := newTestIssuer(t)
		router := newBetRouter(t, &stubBetUseCase{}, issuer)

		body, _ := json.Marshal(dto.WagerRequest{Number: 5, Stake: 100})
		req := httptest.NewRequest(http.MethodPost, "/api/bets", bytes.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should reject a forged token", func(t *testing.T) {
		issuer := newTestIssuer(t)
		router := newBetRouter(t, &stubBetUseCase{}, issuer)

		body, _ := json.Marshal(dto.WagerRequest{Number: 5, Stake: 100})
		req := httptest.NewRequest(http.MethodPost, "/api/bets", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should map rejections to client errors", func(t *testing.T) {
		tests := []struct {
			name           string
			err            error
			expectedStatus int
			expectedCode   int
		}{
			{"number out of range", errs.ErrNumberOutOfRange, http.StatusBadRequest, errs.CodeNumberOutOfRange},
			{"invalid stake", errs.ErrInvalidStake, http.StatusBadRequest, errs.CodeInvalidStake},
			{"insufficient funds", errs.NewInsufficientFundsError(42, 100, 50), http.StatusUnprocessableEntity, errs.CodeInsufficientFunds},
			{"player not found", errs.ErrPlayerNotFound, http.StatusNotFound, errs.CodePlayerNotFound},
			{"infrastructure failure", errs.ErrDatabaseConnection, http.StatusInternalServerError, errs.CodeInternalServer},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				issuer := newTestIssuer(t)
				router := newBetRouter(t, &stubBetUseCase{err: tt.err}, issuer)

				body, _ := json.Marshal(dto.WagerRequest{Number: 5, Stake: 100})
				req := httptest.NewRequest(http.MethodPost, "/api/bets", bytes.NewReader(body))
				req.Header.Set("Authorization", bearerToken(t, issuer, 42))
				w := httptest.NewRecorder()

				router.ServeHTTP(w, req)

				assert.Equal(t, tt.expectedStatus, w.Code)

				var response dto.ErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedCode, response.Code)
			})
		}
	})

	t.Run("should reject a malformed body", func(t *testing.T) {
		issuer := newTestIssuer(t)
		router := newBetRouter(t, &stubBetUseCase{}, issuer)

		req := httptest.NewRequest(http.MethodPost, "/api/bets", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Authorization", bearerToken(t, issuer, 42))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
