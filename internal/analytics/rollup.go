package analytics

// Rollup yields one total per category in the declared order, zero when no row matched.
// Rows whose key is not a declared category are dropped.
func Rollup(categories []Category, rows []GroupedValue) []CategoryTotal {
	sums := make(map[string]float64, len(rows))
	for _, r := range rows {
		sums[r.Key] += r.Value
	}

	out := make([]CategoryTotal, len(categories))
	for i, c := range categories {
		out[i] = CategoryTotal{Key: c.Key, Label: c.Label, Value: sums[c.Key]}
	}
	return out
}

func valueOf(totals []CategoryTotal, key string) int64 {
	for _, t := range totals {
		if t.Key == key {
			return int64(t.Value)
		}
	}
	return 0
}
