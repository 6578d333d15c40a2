package ingestion

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/statflow-lab/project-statflow/internal/core/stats"
	"github.com/statflow-lab/project-statflow/internal/core/storage"
)

// ErrImportRunning is returned when a start request arrives while an import
// run is already active. Only one run may produce into the queue at a time.
var ErrImportRunning = errors.New("an import is already running")

// Service is the record producer: it validates CSV rows into transaction
// records and pushes them onto the ingestion queue, paced by each row's
// sleep_ms hint. It owns the core's ingestion start/stop toggle.
type Service struct {
	hot      storage.HotStore
	filePath string

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
}

// NewService creates an importer over the given hot store and CSV source.
func NewService(hot storage.HotStore, filePath string) *Service {
	if hot == nil {
		panic("ingestion: hot store must not be nil")
	}
	return &Service{hot: hot, filePath: filePath}
}

// StartImport launches one background import run and returns its ID.
// Returns ErrImportRunning while a previous run is still active.
func (s *Service) StartImport(parent context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return "", ErrImportRunning
	}

	runID := uuid.New().String()
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.running = true

	go func() {
		defer func() {
			cancel()
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
		}()
		s.runImport(ctx, runID)
	}()

	return runID, nil
}

// StopImport signals the active run, if any, to stop before its next row.
// A row mid-enqueue still completes; stopping never aborts in-flight work.
func (s *Service) StopImport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Running reports whether an import run is currently active.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Service) runImport(ctx context.Context, runID string) {
	slog.Info("[Importer] Starting import run", "run_id", runID, "file", s.filePath)

	file, err := os.Open(s.filePath)
	if err != nil {
		slog.Error("[Importer] Cannot open source file", "run_id", runID, "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		slog.Error("[Importer] Cannot read CSV header", "run_id", runID, "error", err)
		return
	}
	cols, err := columnIndex(header)
	if err != nil {
		slog.Error("[Importer] Unusable CSV header", "run_id", runID, "error", err)
		return
	}

	enqueued := 0
	skipped := 0
	for {
		select {
		case <-ctx.Done():
			slog.Info("[Importer] Run stopped", "run_id", runID, "enqueued", enqueued, "skipped", skipped)
			return
		default:
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			slog.Warn("[Importer] Skipping unreadable row", "run_id", runID, "error", err)
			continue
		}

		tx, err := parseRow(cols, row)
		if err != nil {
			skipped++
			slog.Warn("[Importer] Skipping invalid row", "run_id", runID, "error", err)
			continue
		}

		payload, err := json.Marshal(tx)
		if err != nil {
			skipped++
			slog.Warn("[Importer] Skipping unserializable row", "run_id", runID, "error", err)
			continue
		}

		if err := s.hot.EnqueueTransaction(ctx, payload); err != nil {
			skipped++
			slog.Error("[Importer] Enqueue failed, row dropped", "run_id", runID, "error", err)
			continue
		}
		enqueued++

		if tx.SleepMs > 0 {
			select {
			case <-time.After(time.Duration(tx.SleepMs) * time.Millisecond):
			case <-ctx.Done():
			}
		}
	}

	slog.Info("[Importer] Run finished", "run_id", runID, "enqueued", enqueued, "skipped", skipped)
}

var requiredColumns = []string{"timestamp", "type", "payment_method", "amount"}

// columnIndex maps header names to positions so column order in the file is
// free. sleep_ms is optional.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

// parseRow validates one CSV row into a transaction record. Amounts are
// validated as decimals before being narrowed to the wire's float shape, so
// "12.50.1" style garbage never reaches the queue.
func parseRow(cols map[string]int, row []string) (stats.Transaction, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	amount, err := decimal.NewFromString(field("amount"))
	if err != nil {
		return stats.Transaction{}, fmt.Errorf("bad amount %q: %w", field("amount"), err)
	}

	sleepMs := 0
	if raw := field("sleep_ms"); raw != "" {
		sleepMs, err = strconv.Atoi(raw)
		if err != nil || sleepMs < 0 {
			return stats.Transaction{}, fmt.Errorf("bad sleep_ms %q", raw)
		}
	}

	tx := stats.Transaction{
		Timestamp:     field("timestamp"),
		Type:          field("type"),
		PaymentMethod: field("payment_method"),
		Amount:        amount.InexactFloat64(),
		SleepMs:       sleepMs,
	}
	if err := tx.Validate(); err != nil {
		return stats.Transaction{}, err
	}
	return tx, nil
}
