package ingest

import (
	"context"
	"errors"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/meteo-data/weather-ingest/internal/models"
	"github.com/meteo-data/weather-ingest/internal/observability"
)

// Client input errors. Handlers map these to 400 responses; their messages
// are the wire-visible error strings.
var (
	ErrEmptyPayload     = errors.New("no csv data provided; send raw body or multipart file")
	ErrMissingMultipart = errors.New("missing csv payload in multipart form")
	ErrNoHeader         = errors.New("empty csv (no header)")
	ErrNoDataRows       = errors.New("empty csv (header only or no data rows)")
)

// ReadingStore is the persistence surface the coordinator needs: one
// insert-or-skip per valid row. Implemented by repository.ReadingRepository.
type ReadingStore interface {
	InsertOrSkip(ctx context.Context, reading models.WeatherReading) (bool, error)
}

// Ingester coordinates one CSV ingestion: checksum, line-by-line parsing
// and validation, insert-or-skip persistence, and result assembly.
type Ingester struct {
	store   ReadingStore
	clock   clockwork.Clock
	metrics *observability.Metrics
}

// NewIngester creates an ingestion coordinator using the real clock.
func NewIngester(store ReadingStore, metrics *observability.Metrics) *Ingester {
	return NewIngesterWithClock(store, metrics, clockwork.NewRealClock())
}

// NewIngesterWithClock injects the time source; tests pass a fake clock to
// make elapsed_ms deterministic.
func NewIngesterWithClock(store ReadingStore, metrics *observability.Metrics, clock clockwork.Clock) *Ingester {
	return &Ingester{store: store, clock: clock, metrics: metrics}
}

// Ingest processes one raw CSV payload. The checksum covers the unmodified
// payload bytes and is computed before the timer starts; elapsed_ms spans
// row parsing through persistence only. The first line is consumed as the
// header and never validated. Blank lines are skipped. Rows that fail
// validation and rows that collide with an existing (city,date) pair are
// counted separately internally but folded into a single rows_rejected
// total. A store failure aborts the whole ingestion with no partial result.
func (ing *Ingester) Ingest(ctx context.Context, payload []byte) (*models.IngestionResult, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	checksum := Checksum(payload)

	// Lines carry no length limit; a single field spanning megabytes is
	// still one detected row for the validator to reject.
	lines := strings.Split(string(payload), "\n")
	if len(lines) == 0 {
		return nil, ErrNoHeader
	}

	// Header line: required, consumed, never persisted.
	start := ing.clock.Now()

	rowsDetected := 0
	rowsRejected := 0
	validRows := make([]models.WeatherReading, 0, 256)

	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		rowsDetected++

		reading, ok := ParseRow(line)
		if !ok {
			rowsRejected++
			continue
		}
		validRows = append(validRows, reading)
	}

	if rowsDetected == 0 {
		return nil, ErrNoDataRows
	}

	rowsInserted := 0
	conflicts := 0
	for _, reading := range validRows {
		inserted, err := ing.store.InsertOrSkip(ctx, reading)
		if err != nil {
			return nil, err
		}
		if inserted {
			rowsInserted++
		} else {
			conflicts++
		}
	}

	elapsed := ing.clock.Since(start)

	ing.metrics.IngestRequests.Inc()
	ing.metrics.RowsDetected.Add(float64(rowsDetected))
	ing.metrics.RowsInserted.Add(float64(rowsInserted))
	ing.metrics.RowsRejected.Add(float64(rowsRejected))
	ing.metrics.RowConflicts.Add(float64(conflicts))
	ing.metrics.IngestDuration.Observe(elapsed.Seconds())

	return &models.IngestionResult{
		RowsInserted: rowsInserted,
		RowsRejected: rowsRejected + conflicts,
		ElapsedMs:    elapsed.Milliseconds(),
		FileChecksum: checksum,
	}, nil
}
