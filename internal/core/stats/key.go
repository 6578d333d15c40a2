package stats

import (
	"fmt"
	"strings"
)

const (
	// QueueName is the hot store list the importer pushes onto and the
	// aggregator pops from.
	QueueName = "transaction_queue"

	keyPrefix = "stats:"

	// KeyPattern matches every hot aggregate key during an archive scan.
	KeyPattern = keyPrefix + "*"
)

// AggregateKey builds the hot aggregate key for one (day, type) pair:
// "stats:<YYYY-MM-DD>:<type>". The same string identifies the durable record.
func AggregateKey(day, txType string) string {
	return keyPrefix + day + ":" + txType
}

// ParseAggregateKey splits a hot aggregate key back into its day and type.
// The type may itself contain colons; only the first two separators are structural.
func ParseAggregateKey(key string) (day, txType string, err error) {
	rest, ok := strings.CutPrefix(key, keyPrefix)
	if !ok {
		return "", "", fmt.Errorf("key %q is not an aggregate key", key)
	}
	day, txType, ok = strings.Cut(rest, ":")
	if !ok || txType == "" {
		return "", "", fmt.Errorf("key %q is missing a type segment", key)
	}
	if len(day) != len(DateLayout) {
		return "", "", fmt.Errorf("key %q has malformed day %q", key, day)
	}
	return day, txType, nil
}

// BucketName maps a transaction type to its response bucket: the plain plural
// ("deposit" → "deposits"). Novel types get their own bucket the same way.
func BucketName(txType string) string {
	return txType + "s"
}

// TypeFamilies are the transaction types read directly from the hot tier.
// Cold reads are not limited to these: any archived type is surfaced under
// its own bucket.
var TypeFamilies = []string{"deposit", "withdrawal"}
