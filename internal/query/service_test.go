package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/statflow-lab/project-statflow/internal/core/stats"
	storagemocks "github.com/statflow-lab/project-statflow/internal/mocks/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Fixed clock: 2026-01-20 with a 7-day window puts the threshold at 2026-01-13.
var testNow = time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

func newTestService(hot *storagemocks.HotStore, cold *storagemocks.ColdStore) *Service {
	svc := NewService(hot, cold, 7)
	svc.nowFn = func() time.Time { return testNow }
	return svc
}

func TestTotals_Validation(t *testing.T) {
	svc := newTestService(storagemocks.NewHotStore(t), storagemocks.NewColdStore(t))

	tests := []struct {
		name string
		from string
		to   string
	}{
		{name: "malformed from", from: "01/10/2026", to: "2026-01-12"},
		{name: "malformed to", from: "2026-01-10", to: "soon"},
		{name: "inverted range", from: "2026-01-12", to: "2026-01-10"},
		{name: "empty", from: "", to: ""},
		{name: "range too wide", from: "2025-01-01", to: "2026-01-02"},
		{name: "pathologically wide", from: "0001-01-01", to: "9999-12-31"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Totals(context.Background(), tc.from, tc.to)
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestTotals_WidestAllowedRange(t *testing.T) {
	hot := storagemocks.NewHotStore(t)
	cold := storagemocks.NewColdStore(t)

	hot.EXPECT().
		ReadTotals(mock.Anything, mock.Anything).
		Return(map[string]string{}, nil).
		Maybe()
	cold.EXPECT().
		FindByDate(mock.Anything, mock.Anything).
		Return(nil, nil).
		Maybe()

	svc := newTestService(hot, cold)

	// 366 days inclusive: the cap itself is still a valid request.
	resp, err := svc.Totals(context.Background(), "2025-01-15", "2026-01-15")
	require.NoError(t, err)
	require.Len(t, resp, 366)

	// One day wider is rejected before any store call.
	_, err = svc.Totals(context.Background(), "2025-01-14", "2026-01-15")
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestTotals_HotDayReadsOnePerFamily(t *testing.T) {
	hot := storagemocks.NewHotStore(t)
	cold := storagemocks.NewColdStore(t)

	hot.EXPECT().
		ReadTotals(mock.Anything, "stats:2026-01-15:deposit").
		Return(map[string]string{"visa": "150.5", "paypal": "20"}, nil).
		Once()
	hot.EXPECT().
		ReadTotals(mock.Anything, "stats:2026-01-15:withdrawal").
		Return(map[string]string{"visa": "-30"}, nil).
		Once()

	svc := newTestService(hot, cold)
	resp, err := svc.Totals(context.Background(), "2026-01-15", "2026-01-15")
	require.NoError(t, err)

	require.Len(t, resp, 1)
	require.Equal(t, DayTotals{
		"deposits":    {"visa": 150.5, "paypal": 20},
		"withdrawals": {"visa": -30},
	}, resp["2026-01-15"])

	// Hot-authoritative days never touch the cold store.
	cold.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
}

func TestTotals_ColdDayRebuildsBucketsFromKeys(t *testing.T) {
	hot := storagemocks.NewHotStore(t)
	cold := storagemocks.NewColdStore(t)

	cold.EXPECT().
		FindByDate(mock.Anything, "2026-01-05").
		Return([]stats.DurableAggregate{
			{ID: "stats:2026-01-05:deposit", Totals: map[string]float64{"visa": 99.5}, Date: "2026-01-05"},
			{ID: "stats:2026-01-05:refund", Totals: map[string]float64{"paypal": 12}, Date: "2026-01-05"},
		}, nil).
		Once()

	svc := newTestService(hot, cold)
	resp, err := svc.Totals(context.Background(), "2026-01-05", "2026-01-05")
	require.NoError(t, err)

	require.Equal(t, DayTotals{
		"deposits":    {"visa": 99.5},
		"withdrawals": {},
		"refunds":     {"paypal": 12},
	}, resp["2026-01-05"])

	hot.AssertNotCalled(t, "ReadTotals", mock.Anything, mock.Anything)
}

func TestTotals_ThresholdBoundaryRouting(t *testing.T) {
	hot := storagemocks.NewHotStore(t)
	cold := storagemocks.NewColdStore(t)

	// 2026-01-12 is one day older than the threshold: cold-authoritative.
	cold.EXPECT().
		FindByDate(mock.Anything, "2026-01-12").
		Return(nil, nil).
		Once()

	// 2026-01-13 is exactly at the threshold: hot-authoritative.
	hot.EXPECT().
		ReadTotals(mock.Anything, "stats:2026-01-13:deposit").
		Return(map[string]string{}, nil).
		Once()
	hot.EXPECT().
		ReadTotals(mock.Anything, "stats:2026-01-13:withdrawal").
		Return(map[string]string{}, nil).
		Once()

	svc := newTestService(hot, cold)
	resp, err := svc.Totals(context.Background(), "2026-01-12", "2026-01-13")
	require.NoError(t, err)
	require.Len(t, resp, 2)
}

func TestTotals_NoOmittedDays(t *testing.T) {
	hot := storagemocks.NewHotStore(t)
	cold := storagemocks.NewColdStore(t)

	// Five hot days, data on only two of them.
	hot.EXPECT().
		ReadTotals(mock.Anything, "stats:2026-01-15:deposit").
		Return(map[string]string{"visa": "1"}, nil).
		Once()
	hot.EXPECT().
		ReadTotals(mock.Anything, "stats:2026-01-17:withdrawal").
		Return(map[string]string{"visa": "-2"}, nil).
		Once()
	hot.EXPECT().
		ReadTotals(mock.Anything, mock.Anything).
		Return(map[string]string{}, nil)

	svc := newTestService(hot, cold)
	resp, err := svc.Totals(context.Background(), "2026-01-14", "2026-01-18")
	require.NoError(t, err)

	require.Len(t, resp, 5)
	for _, day := range []string{"2026-01-14", "2026-01-15", "2026-01-16", "2026-01-17", "2026-01-18"} {
		require.Contains(t, resp, day)
		require.Contains(t, resp[day], "deposits")
		require.Contains(t, resp[day], "withdrawals")
	}
	require.Equal(t, map[string]float64{}, resp["2026-01-16"]["deposits"])
	require.Equal(t, map[string]float64{"visa": 1.0}, resp["2026-01-15"]["deposits"])
	require.Equal(t, map[string]float64{"visa": -2.0}, resp["2026-01-17"]["withdrawals"])
}

func TestTotals_StoreFailureIsOpaqueAndTotal(t *testing.T) {
	hot := storagemocks.NewHotStore(t)
	cold := storagemocks.NewColdStore(t)

	cold.EXPECT().
		FindByDate(mock.Anything, "2026-01-05").
		Return(nil, errors.New("mongo down")).
		Once()

	svc := newTestService(hot, cold)
	resp, err := svc.Totals(context.Background(), "2026-01-05", "2026-01-06")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidRange)
	// No partial results alongside the failure.
	require.Nil(t, resp)
}

func TestTotals_SkipsUnparsableDurableID(t *testing.T) {
	hot := storagemocks.NewHotStore(t)
	cold := storagemocks.NewColdStore(t)

	cold.EXPECT().
		FindByDate(mock.Anything, "2026-01-05").
		Return([]stats.DurableAggregate{
			{ID: "legacy-garbage", Totals: map[string]float64{"visa": 1}, Date: "2026-01-05"},
			{ID: "stats:2026-01-05:deposit", Totals: map[string]float64{"visa": 2}, Date: "2026-01-05"},
		}, nil).
		Once()

	svc := newTestService(hot, cold)
	resp, err := svc.Totals(context.Background(), "2026-01-05", "2026-01-05")
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"visa": 2.0}, resp["2026-01-05"]["deposits"])
}
