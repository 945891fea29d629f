// Command fixture snapshots the finals article into test fixtures. It runs the
// same extraction, normalization, and aggregation code as the service, so the
// written JSON matches what the dashboard would serve.
//
// Usage:
//
//	go run ./cmd/fixture \
//	  -html-out internal/adapter/wikipedia/testdata/finals_live.html \
//	  -dataset-out data/fixture/dataset.json
//
// Pass -html to rebuild the JSON from a page saved earlier instead of the network.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/worldcup-dashboard/internal/adapter/countrycode"
	"github.com/couchcryptid/worldcup-dashboard/internal/adapter/wikipedia"
	"github.com/couchcryptid/worldcup-dashboard/internal/domain"
	"github.com/couchcryptid/worldcup-dashboard/internal/observability"
	"github.com/jonboulle/clockwork"
)

const userAgent = "worldcup-dashboard-fixture/1.0 (+https://github.com/couchcryptid/worldcup-dashboard)"

// snapshot is the JSON document written to -dataset-out.
type snapshot struct {
	SourceURL string                  `json:"source_url"`
	LoadedAt  time.Time               `json:"loaded_at"`
	Headers   []string                `json:"headers"`
	Skipped   int                     `json:"skipped_rows"`
	Records   []domain.MatchRecord    `json:"records"`
	Wins      []domain.WinCount       `json:"wins"`
	Dropped   []domain.CodeResolution `json:"dropped"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	url := flag.String("url", wikipedia.DefaultURL, "page to fetch")
	htmlIn := flag.String("html", "", "read a saved page instead of fetching -url")
	htmlOut := flag.String("html-out", "", "output path for the fetched page")
	datasetOut := flag.String("dataset-out", "", "output path for the dataset JSON fixture")
	timeout := flag.Duration("timeout", 30*time.Second, "fetch timeout")
	flag.Parse()

	if *datasetOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -dataset-out")
	}

	// Fixed clock for a reproducible loaded_at.
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2022, time.December, 18, 18, 0, 0, 0, time.UTC)))
	defer domain.SetClock(nil)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	page, err := readPage(ctx, *htmlIn, *url, *timeout, logger)
	if err != nil {
		return err
	}
	if *htmlOut != "" {
		if err := writeFile(*htmlOut, page); err != nil {
			return fmt.Errorf("writing page: %w", err)
		}
		log.Printf("wrote page: %s (%d bytes)", *htmlOut, len(page))
	}

	table, err := wikipedia.ExtractTable(bytes.NewReader(page), domain.ColumnYear)
	if err != nil {
		return fmt.Errorf("extract table: %w", err)
	}
	records, skipped, err := domain.ParseMatchRecords(table)
	if err != nil {
		return fmt.Errorf("parse records: %w", err)
	}
	records = domain.NormalizeRecords(records)

	kept, dropped := domain.ResolveCodes(ctx, domain.CountWins(records), countrycode.NewResolver(), logger)
	ds := domain.NewDataset(*url, records, kept, dropped)

	snap := snapshot{
		SourceURL: ds.SourceURL(),
		LoadedAt:  ds.LoadedAt(),
		Headers:   table.Headers,
		Skipped:   skipped,
		Records:   ds.Records(),
		Wins:      ds.Wins(),
		Dropped:   ds.Dropped(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := writeFile(*datasetOut, append(data, '\n')); err != nil {
		return fmt.Errorf("writing dataset fixture: %w", err)
	}
	log.Printf("wrote dataset fixture: %s", *datasetOut)

	printStats(ds, skipped)
	return nil
}

func readPage(ctx context.Context, path, url string, timeout time.Duration, logger *slog.Logger) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	client := wikipedia.NewClient(url, userAgent, timeout, observability.NewMetricsForTesting(), logger)
	return client.FetchPage(ctx)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func printStats(ds *domain.Dataset, skipped int) {
	years := ds.Years()

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Finals: %d (skipped rows: %d)\n", len(ds.Records()), skipped)
	if len(years) > 0 {
		fmt.Printf("Years: %d-%d, default %d\n", years[0], years[len(years)-1], ds.DefaultYear())
	}
	fmt.Printf("Countries: %d resolved, %d dropped, default %q\n",
		len(ds.Wins()), len(ds.Dropped()), ds.DefaultCountry())
	fmt.Printf("Total wins: %d\n", ds.TotalWins())

	fmt.Println("\nWins:")
	for _, w := range ds.Wins() {
		fmt.Printf("  %-16s %s %d\n", w.Country, w.ISO, w.Wins)
	}
	for _, d := range ds.Dropped() {
		fmt.Printf("  dropped %q: %s\n", d.Country, d.Reason)
	}

	if rec, ok := ds.Final(ds.DefaultYear()); ok {
		fmt.Printf("\nLatest final: %d %s beat %s (%s)\n", rec.Year, rec.Winners, rec.RunnersUp, rec.Score)
	}
}
