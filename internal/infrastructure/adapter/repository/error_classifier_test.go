package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	t.Run("classifies duplicate key errors", func(t *testing.T) {
		assert.True(t, c.IsDuplicateKeyError(errors.New(`duplicate key value violates unique constraint "idx_players_login"`)))
		assert.True(t, c.IsDuplicateKeyError(errors.New("UNIQUE constraint failed: players.login")))
		assert.False(t, c.IsDuplicateKeyError(errors.New("connection refused")))
		assert.False(t, c.IsDuplicateKeyError(nil))
	})

	t.Run("classifies lock errors", func(t *testing.T) {
		assert.True(t, c.IsLockError(errors.New("deadlock detected")))
		assert.True(t, c.IsLockError(errors.New("could not serialize access due to concurrent update")))
		assert.False(t, c.IsLockError(errors.New("duplicate key")))
		assert.False(t, c.IsLockError(nil))
	})

	t.Run("classifies connection errors", func(t *testing.T) {
		assert.True(t, c.IsConnectionError(errors.New("dial tcp 127.0.0.1:5432: connection refused")))
		assert.True(t, c.IsConnectionError(errors.New("unexpected EOF")))
		assert.False(t, c.IsConnectionError(errors.New("deadlock detected")))
		assert.False(t, c.IsConnectionError(nil))
	})
}
