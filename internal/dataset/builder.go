// Package dataset builds the immutable dashboard Dataset from the finals table.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/worldcup-dashboard/internal/domain"
	"github.com/couchcryptid/worldcup-dashboard/internal/observability"
)

// TableSource provides the raw finals table.
type TableSource interface {
	FetchTable(ctx context.Context) (domain.Table, error)
}

// Builder runs the load, normalize and aggregate steps once.
type Builder struct {
	source    TableSource
	resolver  domain.CodeResolver
	sourceURL string
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Builder reading from source and resolving codes with resolver.
func New(source TableSource, resolver domain.CodeResolver, sourceURL string, logger *slog.Logger, metrics *observability.Metrics) *Builder {
	return &Builder{
		source:    source,
		resolver:  resolver,
		sourceURL: sourceURL,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once a dataset has been built.
func (b *Builder) CheckReadiness(_ context.Context) error {
	if !b.ready.Load() {
		return errors.New("dataset has not been built yet")
	}
	return nil
}

// Build fetches the table and derives the Dataset. Any error is fatal to startup.
func (b *Builder) Build(ctx context.Context) (*domain.Dataset, error) {
	start := time.Now()

	table, err := b.source.FetchTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load finals table: %w", err)
	}

	records, skipped, err := domain.ParseMatchRecords(table)
	if err != nil {
		return nil, fmt.Errorf("parse finals table: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("parse finals table: no finals found")
	}
	if skipped > 0 {
		b.logger.Warn("skipped rows without a year", "count", skipped)
	}

	records = domain.NormalizeRecords(records)
	wins := domain.CountWins(records)
	kept, dropped := domain.ResolveCodes(ctx, wins, b.resolver, b.logger)

	ds := domain.NewDataset(b.sourceURL, records, kept, dropped)

	b.metrics.MatchRecords.Set(float64(len(records)))
	b.metrics.SkippedRows.Set(float64(skipped))
	b.metrics.CountriesResolved.Set(float64(len(kept)))
	b.metrics.CountriesDropped.Set(float64(len(dropped)))
	b.metrics.DatasetLoadedAt.Set(float64(ds.LoadedAt().Unix()))
	b.ready.Store(true)

	b.logger.Info("dataset built",
		"records", len(records),
		"countries", len(kept),
		"dropped", len(dropped),
		"default_country", ds.DefaultCountry(),
		"default_year", ds.DefaultYear(),
		"duration", time.Since(start),
	)
	return ds, nil
}
