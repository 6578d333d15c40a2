package stats

// DurableAggregate is the persisted snapshot of one hot aggregate. Writes are
// last-write-wins upserts keyed by ID, so re-archiving the same key is
// idempotent and monotonically replaces the prior snapshot.
type DurableAggregate struct {
	// ID is the hot aggregate key, "stats:<YYYY-MM-DD>:<type>".
	ID string `bson:"_id" json:"id"`

	// Totals maps payment method to the running total at archive time.
	Totals map[string]float64 `bson:"totals" json:"totals"`

	// Date is the aggregate's day, duplicated out of the key for range queries.
	Date string `bson:"date" json:"date"`
}
