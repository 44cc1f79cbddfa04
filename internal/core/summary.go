package core

// CategoryTotal is an amount aggregated by category. Derived for
// presentation only, never persisted.
type CategoryTotal struct {
	Category Category
	Total    Money
}

// SummarizeByCategory sums amounts per category in a single pass.
// Result order follows each category's first appearance in records;
// categories with no records are absent rather than zero-filled.
func SummarizeByCategory(records []Transaction) []CategoryTotal {
	index := make(map[Category]int, len(records))
	var totals []CategoryTotal
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, CategoryTotal{Category: r.Category})
		}
		totals[i].Total.Yen += r.Amount.Yen
	}
	return totals
}
