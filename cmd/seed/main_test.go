package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRowMissing(t *testing.T) {
	t.Run("nil error means the row exists", func(t *testing.T) {
		missing, err := rowMissing(nil)
		require.NoError(t, err)
		assert.False(t, missing)
	})

	t.Run("record-not-found means the row is absent", func(t *testing.T) {
		missing, err := rowMissing(gorm.ErrRecordNotFound)
		require.NoError(t, err)
		assert.True(t, missing)
	})

	t.Run("store failure is not treated as absence", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		missing, err := rowMissing(storeErr)
		assert.ErrorIs(t, err, storeErr)
		assert.False(t, missing)
	})
}
