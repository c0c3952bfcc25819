package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStruct(t *testing.T) {
	type registerRequest struct {
		Name    string `validate:"required"`
		Surname string `validate:"required"`
	}

	t.Run("valid", func(t *testing.T) {
		err := Struct(registerRequest{Name: "Ivan", Surname: "Petrov"})
		assert.NoError(t, err)
	})

	t.Run("missing fields are named in the message", func(t *testing.T) {
		err := Struct(registerRequest{Name: "Ivan"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "surname is required")
	})
}
