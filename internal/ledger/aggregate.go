package ledger

import (
	"iter"

	"finance-tracker/internal/domain"
)

// CumulativeSum adds up the amount of every transaction in seq.
func CumulativeSum(seq iter.Seq[domain.Transaction]) float64 {
	var total float64
	for tx := range seq {
		total += tx.Amount
	}
	return total
}

// SumByCategory adds up the amounts of the transactions labelled category.
func SumByCategory(seq iter.Seq[domain.Transaction], category string) float64 {
	var total float64
	for tx := range seq {
		if tx.Category == category {
			total += tx.Amount
		}
	}
	return total
}
