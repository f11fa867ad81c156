package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostText(t *testing.T) {
	t.Run("empty string fails", func(t *testing.T) {
		assert.ErrorIs(t, ValidatePostText(""), ErrEmptyText)
	})

	t.Run("whitespace-only passes", func(t *testing.T) {
		assert.NoError(t, ValidatePostText(" "))
		assert.NoError(t, ValidatePostText("\n\t"))
	})

	t.Run("regular text passes", func(t *testing.T) {
		assert.NoError(t, ValidatePostText("hello world"))
	})
}
