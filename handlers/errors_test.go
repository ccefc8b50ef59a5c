package handlers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"orthonova/utils"
)

func TestValidationErr(t *testing.T) {
	t.Run("form validation failures are client errors", func(t *testing.T) {
		err := utils.ValidatePatientForm(utils.PatientForm{})
		assert.True(t, validationErr(err))
	})

	t.Run("sentinels survive wrapping", func(t *testing.T) {
		err := fmt.Errorf("failed to register patient: %w", utils.ErrInvalidPhone)
		assert.True(t, validationErr(err))
	})

	t.Run("date parse failures are client errors", func(t *testing.T) {
		_, err := time.Parse("2006-01-02", "31/12/1990")
		assert.True(t, validationErr(err))
	})

	t.Run("persistence failures are not", func(t *testing.T) {
		assert.False(t, validationErr(fmt.Errorf("connection refused")))
	})
}

func TestConsistencyErr(t *testing.T) {
	assert.True(t, consistencyErr(fmt.Errorf("failed to create bill: unknown service 99")))
	assert.True(t, consistencyErr(fmt.Errorf("patient not found")))
	assert.False(t, consistencyErr(fmt.Errorf("connection refused")))
}
