package usecase

import (
	"math"

	"midtrans_gateway/internal/domain/entities"
)

// Pseudo-item ids appended by the reconciler.
const (
	itemIDTax        = "TAX"
	itemIDAdjustment = "ADJUSTMENT"
)

// maxItemNameLen is the Midtrans display limit for item names.
const maxItemNameLen = 50

// BuildItemDetails turns invoice lines plus tax into the Snap item_details
// list and returns it with the gross amount. Each line carries the rounded
// unit price, and the running total accrues exactly what the payload
// expresses (unit price times quantity); any drift from the authoritative
// invoice total goes into a signed ADJUSTMENT line, so the detail amounts
// always sum to the returned gross amount exactly and Midtrans never
// rejects the order for a mismatch.
func BuildItemDetails(items []entities.LineItem, tax float64, totalWithTax float64) ([]entities.ItemDetail, int64) {
	details := make([]entities.ItemDetail, 0, len(items)+2)

	var runningTotal int64
	for _, item := range items {
		unitPrice := roundToInt(item.Price)
		details = append(details, entities.ItemDetail{
			ID:       item.ID,
			Price:    unitPrice,
			Quantity: item.Quantity,
			Name:     truncate(item.Title, maxItemNameLen),
		})
		runningTotal += unitPrice * int64(item.Quantity)
	}

	taxAmount := roundToInt(tax)
	if taxAmount > 0 {
		details = append(details, entities.ItemDetail{
			ID:       itemIDTax,
			Price:    taxAmount,
			Quantity: 1,
			Name:     "Tax",
		})
		runningTotal += taxAmount
	}

	grossAmount := roundToInt(totalWithTax)
	if adjustment := grossAmount - runningTotal; adjustment != 0 {
		details = append(details, entities.ItemDetail{
			ID:       itemIDAdjustment,
			Price:    adjustment,
			Quantity: 1,
			Name:     "Adjustment",
		})
	}

	return details, grossAmount
}

func roundToInt(v float64) int64 {
	return int64(math.Round(v))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
