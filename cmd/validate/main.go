// Command validate runs offline integrity checks against a saved copy of the
// finals article: table extraction, record parsing, name normalization, win
// aggregation, and country code resolution. With -dataset it also compares the
// result to a fixture written by cmd/fixture.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -html internal/adapter/wikipedia/testdata/finals.html \
//	  -dataset data/fixture/dataset.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/worldcup-dashboard/internal/adapter/countrycode"
	"github.com/couchcryptid/worldcup-dashboard/internal/adapter/wikipedia"
	"github.com/couchcryptid/worldcup-dashboard/internal/domain"
	"github.com/google/go-cmp/cmp"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// knownFinals are results that must survive any edit of the article.
var knownFinals = []domain.MatchRecord{
	{Year: 1930, Winners: "Uruguay", RunnersUp: "Argentina"},
	{Year: 1954, Winners: "Germany", RunnersUp: "Hungary"},
	{Year: 1966, Winners: "United Kingdom", RunnersUp: "Germany"},
	{Year: 2014, Winners: "Germany", RunnersUp: "Argentina"},
	{Year: 2018, Winners: "France", RunnersUp: "Croatia"},
}

// fixture is the subset of the cmd/fixture output compared here.
type fixture struct {
	Records []domain.MatchRecord    `json:"records"`
	Wins    []domain.WinCount       `json:"wins"`
	Dropped []domain.CodeResolution `json:"dropped"`
}

func main() {
	htmlPath := flag.String("html", "", "path to a saved copy of the finals article")
	datasetPath := flag.String("dataset", "", "optional dataset fixture to compare against")
	flag.Parse()

	if *htmlPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*htmlPath, *datasetPath); code != 0 {
		os.Exit(code)
	}
}

func run(htmlPath, datasetPath string) int {
	fmt.Println("=== World Cup Finals Integrity Validation ===")
	fmt.Println()

	f, err := os.Open(htmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: open page: %v\n", err)
		return 1
	}
	defer f.Close()

	table, err := wikipedia.ExtractTable(f, domain.ColumnYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: extract table: %v\n", err)
		return 1
	}

	raw, skipped, err := domain.ParseMatchRecords(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: parse records: %v\n", err)
		return 1
	}
	records := domain.NormalizeRecords(raw)
	wins := domain.CountWins(records)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kept, dropped := domain.ResolveCodes(context.Background(), wins, countrycode.NewResolver(), logger)

	phases := []*phase{
		validateRecords(raw, table),
		validateNormalization(records),
		validateAggregation(records, wins),
		validateResolution(wins, kept, dropped),
		validateKnownFinals(domain.NewDataset(htmlPath, records, kept, dropped)),
	}
	if datasetPath != "" {
		phases = append(phases, validateFixture(datasetPath, records, kept, dropped))
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Rows: %d table, %d finals, %d skipped; countries: %d resolved, %d dropped\n",
		len(table.Rows), len(records), skipped, len(kept), len(dropped))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Records ──

func validateRecords(records []domain.MatchRecord, table domain.Table) *phase {
	p := &phase{name: "Phase 1: Records (table parsing)"}

	if len(records) == 0 {
		p.errorf("no finals parsed from %d table rows", len(table.Rows))
		return p
	}

	prev := 0
	for i, r := range records {
		if r.Winners == "" {
			p.errorf("record %d (%d): empty winner", i, r.Year)
		}
		if r.RunnersUp == "" {
			p.errorf("record %d (%d): empty runner-up", i, r.Year)
		}
		if r.Winners != "" && r.Winners == r.RunnersUp {
			p.errorf("record %d (%d): winner equals runner-up %q", i, r.Year, r.Winners)
		}
		if r.Year < 1930 {
			p.errorf("record %d: year %d predates the first World Cup", i, r.Year)
		}
		if r.Year <= prev {
			p.errorf("record %d: year %d not after %d", i, r.Year, prev)
		}
		prev = r.Year
	}
	return p
}

// ── Phase 2: Normalization ──

func validateNormalization(records []domain.MatchRecord) *phase {
	p := &phase{name: "Phase 2: Normalization (country names)"}

	for _, r := range records {
		if r.Winners == "West Germany" || r.RunnersUp == "West Germany" {
			p.errorf("%d: West Germany not merged into Germany", r.Year)
		}
		if r.Winners == "England" {
			p.errorf("%d: England winner not renamed", r.Year)
		}
	}
	return p
}

// ── Phase 3: Aggregation ──

func validateAggregation(records []domain.MatchRecord, wins []domain.WinCount) *phase {
	p := &phase{name: "Phase 3: Aggregation (win counts)"}

	expected := map[string]int{}
	for _, r := range records {
		expected[r.Winners]++
	}

	total := 0
	for i, w := range wins {
		total += w.Wins
		if w.Wins <= 0 {
			p.errorf("%s: non-positive count %d", w.Country, w.Wins)
		}
		if w.Wins != expected[w.Country] {
			p.errorf("%s: counted %d wins, records show %d", w.Country, w.Wins, expected[w.Country])
		}
		if i > 0 && wins[i-1].Wins < w.Wins {
			p.errorf("%s: out of order after %s", w.Country, wins[i-1].Country)
		}
	}
	if total != len(records) {
		p.errorf("counts sum to %d, want %d finals", total, len(records))
	}
	if len(wins) != len(expected) {
		p.errorf("%d countries counted, records name %d", len(wins), len(expected))
	}
	return p
}

// ── Phase 4: Code resolution ──

func validateResolution(wins, kept []domain.WinCount, dropped []domain.CodeResolution) *phase {
	p := &phase{name: "Phase 4: Resolution (ISO3 codes)"}

	if len(kept)+len(dropped) != len(wins) {
		p.errorf("%d kept + %d dropped != %d counted", len(kept), len(dropped), len(wins))
	}
	seen := map[string]string{}
	for _, w := range kept {
		if !domain.IsISO3(w.ISO) {
			p.errorf("%s: invalid code %q", w.Country, w.ISO)
		}
		if other, dup := seen[w.ISO]; dup {
			p.errorf("%s and %s share code %s", other, w.Country, w.ISO)
		}
		seen[w.ISO] = w.Country
	}
	for _, d := range dropped {
		if d.Resolved || d.Reason == "" {
			p.errorf("%s: dropped without a reason", d.Country)
		}
		fmt.Printf("  Note: %s dropped (%s)\n", d.Country, d.Reason)
	}
	return p
}

// ── Phase 5: Known finals ──

func validateKnownFinals(ds *domain.Dataset) *phase {
	p := &phase{name: "Phase 5: Known finals (spot checks)"}

	for _, want := range knownFinals {
		got, ok := ds.Final(want.Year)
		if !ok {
			p.errorf("%d: final missing", want.Year)
			continue
		}
		if got.Winners != want.Winners || got.RunnersUp != want.RunnersUp {
			p.errorf("%d: got %s/%s, want %s/%s", want.Year, got.Winners, got.RunnersUp, want.Winners, want.RunnersUp)
		}
	}
	if wc, ok := ds.WinsFor("Germany"); !ok || wc.Wins < 4 {
		p.errorf("Germany: want at least 4 wins after merging West Germany, got %d", wc.Wins)
	}
	return p
}

// ── Phase 6: Fixture parity ──

func validateFixture(path string, records []domain.MatchRecord, kept []domain.WinCount, dropped []domain.CodeResolution) *phase {
	p := &phase{name: "Phase 6: Fixture parity (dataset JSON)"}

	data, err := os.ReadFile(path)
	if err != nil {
		p.errorf("read fixture: %v", err)
		return p
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		p.errorf("decode fixture: %v", err)
		return p
	}

	if diff := cmp.Diff(fx.Records, records); diff != "" {
		p.errorf("records differ (-fixture +page):\n%s", diff)
	}
	if diff := cmp.Diff(fx.Wins, kept); diff != "" {
		p.errorf("wins differ (-fixture +page):\n%s", diff)
	}
	if len(fx.Dropped) != len(dropped) {
		p.errorf("fixture drops %d countries, page drops %d", len(fx.Dropped), len(dropped))
	}
	return p
}
