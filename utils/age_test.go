package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateAge(t *testing.T) {
	today := date(2025, time.June, 15)

	t.Run("birthday not yet reached this year", func(t *testing.T) {
		assert.Equal(t, 24, CalculateAge(date(2000, time.June, 16), today))
	})

	t.Run("birthday just passed", func(t *testing.T) {
		assert.Equal(t, 25, CalculateAge(date(2000, time.June, 14), today))
	})

	t.Run("birthday today counts as completed", func(t *testing.T) {
		assert.Equal(t, 25, CalculateAge(date(2000, time.June, 15), today))
	})

	t.Run("earlier month in year", func(t *testing.T) {
		assert.Equal(t, 25, CalculateAge(date(2000, time.January, 1), today))
	})

	t.Run("later month in year", func(t *testing.T) {
		assert.Equal(t, 24, CalculateAge(date(2000, time.December, 31), today))
	})

	t.Run("leap day birth before Feb 28", func(t *testing.T) {
		// Feb 29 birthday has not occurred yet on Feb 28 of a common year.
		assert.Equal(t, 20, CalculateAge(date(2004, time.February, 29), date(2025, time.February, 28)))
		assert.Equal(t, 21, CalculateAge(date(2004, time.February, 29), date(2025, time.March, 1)))
	})
}

func TestAgeFromDOB(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		age, err := AgeFromDOB("2000-06-15")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, age, 25)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := AgeFromDOB("15/06/2000")
		assert.Error(t, err)
	})

	t.Run("empty date", func(t *testing.T) {
		_, err := AgeFromDOB("")
		assert.Error(t, err)
	})
}
