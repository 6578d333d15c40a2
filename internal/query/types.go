package query

// DayTotals is the per-day response shape: bucket name → payment method →
// total. The two type-family buckets are always present, even when empty;
// archived novel types appear as their own "<type>s" bucket.
type DayTotals map[string]map[string]float64

// RangeResponse maps every calendar day in the requested range (inclusive,
// no gaps) to its totals.
type RangeResponse map[string]DayTotals
