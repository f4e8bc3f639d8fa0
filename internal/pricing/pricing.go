package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
)

// Entry is one size-label/amount pair of a price table. Amounts are
// decimal so repeated aggregation never loses cents.
type Entry struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// Line is a priced ingredient selection: its per-size price table and
// how many units were selected.
type Line struct {
	Price  []Entry
	Number int
}

// CheckSizeLabels verifies that the price table covers exactly the given
// size labels: every label priced, no label priced twice, nothing extra.
func CheckSizeLabels(entries []Entry, values []string) error {
	remaining := make(map[string]bool, len(values))
	for _, v := range values {
		remaining[v] = true
	}

	var unexpected []string
	for _, e := range entries {
		if remaining[e.Size] {
			delete(remaining, e.Size)
		} else {
			unexpected = append(unexpected, e.Size)
		}
	}

	var missing []string
	for _, v := range values {
		if remaining[v] {
			missing = append(missing, v)
		}
	}

	if len(missing) > 0 {
		return apperr.New(apperr.SizeMismatch,
			"Following sizes were not provided: %s.", strings.Join(missing, ", "))
	}
	if len(unexpected) > 0 {
		return apperr.New(apperr.SizeMismatch,
			"Following sizes are not part of provided Size: %s.", strings.Join(unexpected, ", "))
	}
	return nil
}

// CheckNonNegative rejects price tables containing negative amounts.
func CheckNonNegative(entries []Entry) error {
	for _, e := range entries {
		if e.Price.IsNegative() {
			return apperr.New(apperr.Validation,
				"Price for size %s cannot be negative.", e.Size)
		}
	}
	return nil
}

// Aggregate computes a per-size price vector: a copy of base with every
// line's per-size amount, scaled by its number, added in. Result order
// follows base. Labels a line prices but base does not are skipped;
// label-set equality is already enforced when the tables are created.
func Aggregate(base []Entry, lines []Line) []Entry {
	result := make([]Entry, len(base))
	index := make(map[string]int, len(base))
	for i, e := range base {
		result[i] = e
		index[e.Size] = i
	}

	for _, line := range lines {
		n := decimal.NewFromInt(int64(line.Number))
		for _, e := range line.Price {
			i, ok := index[e.Size]
			if !ok {
				continue
			}
			result[i].Price = result[i].Price.Add(e.Price.Mul(n))
		}
	}

	return result
}
