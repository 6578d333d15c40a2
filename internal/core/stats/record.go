package stats

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used in aggregate keys and durable records.
const DateLayout = "2006-01-02"

// Transaction is the unit of ingestion. It is produced by the importer, carried
// through the queue as JSON, folded into a hot aggregate by the aggregator, and
// then discarded — it is never persisted itself.
type Transaction struct {
	// Timestamp is an ISO date-time string. Only its date portion participates
	// in aggregation.
	Timestamp string `json:"timestamp"`

	// Type is the transaction category (e.g. "deposit", "withdrawal").
	Type string `json:"type"`

	// PaymentMethod is the dimension totals are broken down by.
	PaymentMethod string `json:"payment_method"`

	// Amount is signed: withdrawals may carry negative values.
	Amount float64 `json:"amount"`

	// SleepMs is an artificial pacing hint honored by the importer between
	// enqueues. Not part of durable state.
	SleepMs int `json:"sleep_ms,omitempty"`
}

// Validate ensures the record carries every field the aggregation path needs.
func (t *Transaction) Validate() error {
	if _, err := t.Day(); err != nil {
		return err
	}
	if t.Type == "" {
		return fmt.Errorf("type is required")
	}
	if t.PaymentMethod == "" {
		return fmt.Errorf("payment_method is required")
	}
	return nil
}

// Day extracts the calendar-date portion of the timestamp: its first 10 bytes,
// which must parse as YYYY-MM-DD.
func (t *Transaction) Day() (string, error) {
	if len(t.Timestamp) < len(DateLayout) {
		return "", fmt.Errorf("timestamp %q too short for a calendar date", t.Timestamp)
	}
	day := t.Timestamp[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, day); err != nil {
		return "", fmt.Errorf("timestamp %q has no valid calendar date: %w", t.Timestamp, err)
	}
	return day, nil
}
