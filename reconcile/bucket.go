/*
bucket.go - Minor-category bucketing for chart display

PURPOSE:
  Pie charts over free-text categories (visit focus) drown in one-off
  slices. Categories whose share of the total falls below a threshold are
  summed into a single "Outros" bucket; everything at or above the threshold
  survives unchanged. The total count is preserved exactly.

SEE ALSO:
  - aggregate.go: Produces the category counts being bucketed
*/
package reconcile

import "github.com/shopspring/decimal"

// DefaultBucketThreshold is the default display policy: categories under
// 3% of the total collapse into the Outros bucket. Configurable via the
// dashboard configuration.
const DefaultBucketThreshold = 0.03

// BucketMinorCategories collapses categories whose share of the total is
// strictly below thresholdFraction into OtherBucket. A share exactly at the
// threshold is kept. Empty or all-zero input returns an empty map.
func BucketMinorCategories(counts map[string]int, thresholdFraction float64) map[string]int {
	total := 0
	for _, c := range counts {
		total += c
	}
	out := make(map[string]int, len(counts))
	if total == 0 {
		return out
	}

	threshold := decimal.NewFromFloat(thresholdFraction)
	totalDec := decimal.NewFromInt(int64(total))
	other := 0
	for cat, c := range counts {
		share := decimal.NewFromInt(int64(c)).Div(totalDec)
		if share.GreaterThanOrEqual(threshold) {
			out[cat] = c
		} else {
			other += c
		}
	}
	if other > 0 {
		out[OtherBucket] += other
	}
	return out
}
