package analytics_test

import (
	"testing"

	"barangay-portal/internal/analytics"

	"github.com/stretchr/testify/assert"
)

func TestRollup(t *testing.T) {
	categories := []analytics.Category{
		{Key: "a", Label: "A"},
		{Key: "b", Label: "B"},
		{Key: "c", Label: "C"},
	}

	t.Run("zero fills in declared order", func(t *testing.T) {
		totals := analytics.Rollup(categories, []analytics.GroupedValue{{Key: "a", Value: 4}})

		assert.Equal(t, []analytics.CategoryTotal{
			{Key: "a", Label: "A", Value: 4},
			{Key: "b", Label: "B", Value: 0},
			{Key: "c", Label: "C", Value: 0},
		}, totals)
	})

	t.Run("query order does not matter", func(t *testing.T) {
		totals := analytics.Rollup(categories, []analytics.GroupedValue{
			{Key: "c", Value: 1},
			{Key: "a", Value: 2},
			{Key: "zzz", Value: 7},
			{Key: "c", Value: 1},
		})

		assert.Equal(t, []string{"a", "b", "c"}, []string{totals[0].Key, totals[1].Key, totals[2].Key})
		assert.Equal(t, 2.0, totals[0].Value)
		assert.Equal(t, 2.0, totals[2].Value)
	})

	t.Run("empty categories", func(t *testing.T) {
		assert.Empty(t, analytics.Rollup(nil, []analytics.GroupedValue{{Key: "a", Value: 1}}))
	})
}
