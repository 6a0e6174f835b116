package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds  = 4001
	CodeNumberOutOfRange   = 4002
	CodeInvalidStake       = 4003
	CodeInvalidCredentials = 4004
	CodeDuplicateLogin     = 4005
	CodePlayerNotFound     = 4040
	CodeSettlementNotFound = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidWager is returned when a wager is absent or malformed
	ErrInvalidWager = errors.New("invalid wager")

	// ErrNumberOutOfRange is returned when the chosen number is outside the playable range
	ErrNumberOutOfRange = errors.New("chosen number is out of range")

	// ErrInvalidStake is returned when the stake is zero or negative
	ErrInvalidStake = errors.New("stake must be a positive number of points")

	// ErrInsufficientFunds is returned when the stake exceeds the player's balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidCredentials is returned when a login or secret is empty
	ErrInvalidCredentials = errors.New("login and secret must not be empty")

	// ErrDuplicateLogin is returned when account creation uses a login that is already taken
	ErrDuplicateLogin = errors.New("login already taken")

	// ErrPlayerNotFound is returned when the requested player doesn't exist,
	// and deliberately also when authentication fails, so callers cannot
	// distinguish a wrong secret from an unknown login
	ErrPlayerNotFound = errors.New("player not found")

	// ErrSettlementNotFound is returned when the requested settlement doesn't exist
	ErrSettlementNotFound = errors.New("settlement not found")

	// ErrDatabaseConnection is returned when the underlying store is unreachable
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrNumberOutOfRange):
		return CodeNumberOutOfRange
	case errors.Is(err, ErrInvalidStake), errors.Is(err, ErrInvalidWager):
		return CodeInvalidStake
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrDuplicateLogin):
		return CodeDuplicateLogin
	case errors.Is(err, ErrPlayerNotFound):
		return CodePlayerNotFound
	case errors.Is(err, ErrSettlementNotFound):
		return CodeSettlementNotFound
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError carries the balance context of a rejected wager
type InsufficientFundsError struct {
	PlayerID uint64
	Stake    int64
	Balance  int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for player %d: staked %d, available %d",
		e.PlayerID, e.Stake, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"player_id":  e.PlayerID,
		"stake":      e.Stake,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a detailed insufficient funds error
func NewInsufficientFundsError(playerID uint64, stake, balance int64) error {
	return &InsufficientFundsError{
		PlayerID: playerID,
		Stake:    stake,
		Balance:  balance,
	}
}

// WagerError represents a failure while resolving a wager
type WagerError struct {
	PlayerID     uint64
	ChosenNumber int
	Stake        int64
	Reason       string
	Err          error
}

// Error implements the error interface
func (e *WagerError) Error() string {
	return fmt.Sprintf("wager failed for player %d (number: %d, stake: %d): %s - %v",
		e.PlayerID, e.ChosenNumber, e.Stake, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *WagerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *WagerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "wager_error",
		"player_id":     e.PlayerID,
		"chosen_number": e.ChosenNumber,
		"stake":         e.Stake,
		"reason":        e.Reason,
		"error":         e.Err.Error(),
		"error_code":    ErrorCode(e.Err),
	}
}

// NewWagerError creates a detailed wager error
func NewWagerError(playerID uint64, chosenNumber int, stake int64, reason string, err error) error {
	return &WagerError{
		PlayerID:     playerID,
		ChosenNumber: chosenNumber,
		Stake:        stake,
		Reason:       reason,
		Err:          err,
	}
}

// IsRejection reports whether the error is an expected business rejection
// rather than an infrastructure failure
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidWager) ||
		errors.Is(err, ErrNumberOutOfRange) ||
		errors.Is(err, ErrInvalidStake) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrDuplicateLogin) ||
		errors.Is(err, ErrPlayerNotFound)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsPlayerNotFoundError checks if the error is a player not found error
func IsPlayerNotFoundError(err error) bool {
	return errors.Is(err, ErrPlayerNotFound)
}

// IsDuplicateLoginError checks if the error is a duplicate login error
func IsDuplicateLoginError(err error) bool {
	return errors.Is(err, ErrDuplicateLogin)
}
