package utils

import (
	"fmt"

	"github.com/shopspring/decimal"

	"orthonova/models"
)

// CalculateTotal sums price * quantity across the submitted bill rows.
// A row referencing a service missing from the price lookup is an error
// rather than a silent zero, so a stale dropdown selection cannot produce
// an understated bill.
func CalculateTotal(items []models.BillLineItem, prices map[int64]decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		price, ok := prices[item.ServiceID]
		if !ok {
			return decimal.Zero, fmt.Errorf("unknown service %d", item.ServiceID)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}
