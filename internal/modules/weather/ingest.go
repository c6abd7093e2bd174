// README: Scheduled ingestion job; fetches the feed and appends observations.
package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"courierfee/internal/observability"
)

// Fetcher pulls one observation batch from the external feed.
type Fetcher interface {
	Fetch(ctx context.Context) (*Batch, error)
}

// Appender stores one observation.
type Appender interface {
	Append(ctx context.Context, o *Observation) error
}

// Ingestor runs fetch-filter-store cycles on a fixed interval. A failed
// cycle is logged and skipped; the next tick is the recovery mechanism.
type Ingestor struct {
	client   Fetcher
	store    Appender
	cache    LatestCache // nil when Redis is not configured
	logger   *slog.Logger
	metrics  *observability.Metrics
	clock    clockwork.Clock
	interval time.Duration
}

func NewIngestor(
	client Fetcher,
	store Appender,
	cache LatestCache,
	logger *slog.Logger,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	interval time.Duration,
) *Ingestor {
	return &Ingestor{
		client:   client,
		store:    store,
		cache:    cache,
		logger:   logger,
		metrics:  metrics,
		clock:    clock,
		interval: interval,
	}
}

// Run executes one cycle immediately, then one per interval until the
// context is cancelled. Cycle errors never propagate past the loop.
func (j *Ingestor) Run(ctx context.Context) {
	j.logger.Info("ingestion job started", "interval", j.interval)

	if err := j.RunOnce(ctx); err != nil {
		j.logger.Error("ingest run failed", "error", err)
	}

	ticker := j.clock.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("ingestion job stopping", "reason", ctx.Err())
			return
		case <-ticker.Chan():
			if err := j.RunOnce(ctx); err != nil {
				j.logger.Error("ingest run failed", "error", err)
			}
		}
	}
}

// RunOnce performs a single fetch-filter-store cycle. The whole document is
// decoded before any write, so a malformed feed stores nothing. Individual
// append failures do not stop the rest of the batch; rows are independent.
func (j *Ingestor) RunOnce(ctx context.Context) error {
	start := time.Now()

	batch, err := j.client.Fetch(ctx)
	if err != nil {
		j.metrics.IngestRuns.WithLabelValues("fetch_error").Inc()
		return fmt.Errorf("fetch batch: %w", err)
	}

	stored, skipped := 0, 0
	var appendErr error
	for _, st := range batch.Stations {
		city, err := CityForStation(st.Name)
		if err != nil {
			skipped++
			continue
		}
		o := &Observation{
			City:           city,
			WMOCode:        st.WMOCode,
			Phenomenon:     st.Phenomenon,
			AirTemperature: st.AirTemperature,
			WindSpeed:      st.WindSpeed,
			Timestamp:      batch.Timestamp,
		}
		if err := j.store.Append(ctx, o); err != nil {
			j.logger.Error("append observation failed", "city", city, "error", err)
			appendErr = err
			continue
		}
		stored++
		j.metrics.ObservationsStored.Inc()

		if j.cache != nil {
			if err := j.cache.SetLatest(ctx, o); err != nil {
				j.logger.Warn("latest observation cache update failed", "city", city, "error", err)
				// The entry that failed to refresh must not keep serving;
				// drop it so readers fall through to the committed row.
				if derr := j.cache.DeleteLatest(ctx, o.City); derr != nil {
					j.logger.Warn("latest observation cache invalidate failed", "city", city, "error", derr)
				}
			}
		}
	}

	j.metrics.StationsSkipped.Add(float64(skipped))
	j.metrics.IngestDuration.Observe(time.Since(start).Seconds())

	if appendErr != nil {
		j.metrics.IngestRuns.WithLabelValues("store_error").Inc()
		return fmt.Errorf("append observations: %w", appendErr)
	}
	j.metrics.IngestRuns.WithLabelValues("success").Inc()
	j.logger.Info("ingest run complete",
		"batch_timestamp", batch.Timestamp,
		"stored", stored,
		"skipped", skipped,
	)
	return nil
}
