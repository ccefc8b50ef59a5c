package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orthonova/models"
)

func TestCalculateTotal(t *testing.T) {
	prices := map[int64]decimal.Decimal{
		1: decimal.NewFromInt(300),
		2: decimal.NewFromInt(150),
	}

	t.Run("sums price times quantity", func(t *testing.T) {
		items := []models.BillLineItem{
			{ServiceID: 1, Quantity: 2},
			{ServiceID: 2, Quantity: 1},
		}
		total, err := CalculateTotal(items, prices)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(750)), "got %s", total)
	})

	t.Run("empty items yields zero", func(t *testing.T) {
		total, err := CalculateTotal(nil, prices)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("unknown service is an error", func(t *testing.T) {
		items := []models.BillLineItem{
			{ServiceID: 1, Quantity: 1},
			{ServiceID: 99, Quantity: 1},
		}
		_, err := CalculateTotal(items, prices)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown service 99")
	})

	t.Run("fractional prices stay exact", func(t *testing.T) {
		fractional := map[int64]decimal.Decimal{
			7: decimal.RequireFromString("99.95"),
		}
		items := []models.BillLineItem{{ServiceID: 7, Quantity: 3}}
		total, err := CalculateTotal(items, fractional)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("299.85")), "got %s", total)
	})
}
