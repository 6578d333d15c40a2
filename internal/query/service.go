package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/statflow-lab/project-statflow/internal/core/stats"
	"github.com/statflow-lab/project-statflow/internal/core/storage"
)

// ErrInvalidRange marks request validation errors that should return HTTP 400.
var ErrInvalidRange = errors.New("invalid date range")

// maxRangeDays caps the width of a single range query; each requested day
// costs at least one store round trip.
const maxRangeDays = 366

// Service is the query router. For each requested day it picks the
// authoritative tier by the retention threshold — never by probing both
// tiers — and normalizes either tier's data into the same DayTotals shape.
type Service struct {
	hot           storage.HotStore
	cold          storage.ColdStore
	retentionDays int
	nowFn         func() time.Time
}

// NewService creates a query router over both storage tiers.
func NewService(hot storage.HotStore, cold storage.ColdStore, retentionDays int) *Service {
	if retentionDays <= 0 {
		retentionDays = stats.DefaultRetentionDays
	}
	return &Service{
		hot:           hot,
		cold:          cold,
		retentionDays: retentionDays,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Totals resolves the inclusive range [from, to]. Every day in the range gets
// an entry; days without data carry empty buckets rather than being omitted.
func (s *Service) Totals(ctx context.Context, from, to string) (RangeResponse, error) {
	fromDay, err := time.Parse(stats.DateLayout, from)
	if err != nil {
		return nil, invalidRangef("malformed from date %q (want YYYY-MM-DD)", from)
	}
	toDay, err := time.Parse(stats.DateLayout, to)
	if err != nil {
		return nil, invalidRangef("malformed to date %q (want YYYY-MM-DD)", to)
	}
	if toDay.Before(fromDay) {
		return nil, invalidRangef("from %s is after to %s", from, to)
	}
	if days := int(toDay.Sub(fromDay).Hours()/24) + 1; days > maxRangeDays {
		return nil, invalidRangef("range of %d days exceeds the %d-day maximum", days, maxRangeDays)
	}

	threshold := stats.Threshold(s.nowFn(), s.retentionDays)

	out := make(RangeResponse)
	for d := fromDay; !d.After(toDay); d = d.AddDate(0, 0, 1) {
		day := d.Format(stats.DateLayout)
		totals := newDayTotals()

		if stats.IsHot(day, threshold) {
			err = s.fillFromHot(ctx, day, totals)
		} else {
			err = s.fillFromCold(ctx, day, totals)
		}
		if err != nil {
			// One opaque failure for the whole request: no partial results.
			return nil, fmt.Errorf("resolve day %s: %w", day, err)
		}

		out[day] = totals
	}

	return out, nil
}

// fillFromHot reads one hash per type family. A missing key is an empty
// bucket, not an error.
func (s *Service) fillFromHot(ctx context.Context, day string, totals DayTotals) error {
	for _, family := range stats.TypeFamilies {
		key := stats.AggregateKey(day, family)
		raw, err := s.hot.ReadTotals(ctx, key)
		if err != nil {
			return err
		}

		bucket := totals[stats.BucketName(family)]
		for method, value := range raw {
			amount, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("non-numeric total %q for %s/%s", value, key, method)
			}
			bucket[method] = amount
		}
	}
	return nil
}

// fillFromCold rebuilds the hot shape from durable records, deriving each
// bucket from the type suffix of the stored key.
func (s *Service) fillFromCold(ctx context.Context, day string, totals DayTotals) error {
	records, err := s.cold.FindByDate(ctx, day)
	if err != nil {
		return err
	}

	for _, rec := range records {
		_, txType, err := stats.ParseAggregateKey(rec.ID)
		if err != nil {
			slog.Warn("[Query] Skipping durable record with unparsable id", "id", rec.ID, "error", err)
			continue
		}

		bucket := totals[stats.BucketName(txType)]
		if bucket == nil {
			bucket = make(map[string]float64, len(rec.Totals))
			totals[stats.BucketName(txType)] = bucket
		}
		for method, amount := range rec.Totals {
			bucket[method] = amount
		}
	}
	return nil
}

func newDayTotals() DayTotals {
	totals := make(DayTotals, len(stats.TypeFamilies))
	for _, family := range stats.TypeFamilies {
		totals[stats.BucketName(family)] = map[string]float64{}
	}
	return totals
}

func invalidRangef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRange, fmt.Sprintf(format, args...))
}
