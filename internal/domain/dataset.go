package domain

import (
	"slices"
	"sort"
	"time"
)

// Dataset is the immutable result of loading the finals table once. All
// accessors return copies, so callers cannot mutate shared state.
type Dataset struct {
	sourceURL string
	loadedAt  time.Time
	records   []MatchRecord
	wins      []WinCount
	dropped   []CodeResolution

	winsByCountry map[string]int // index into wins
	finalByYear   map[int]int    // index into records, first occurrence
}

// NewDataset builds a Dataset from normalized records, resolved win counts in
// count order, and the countries dropped during resolution.
func NewDataset(sourceURL string, records []MatchRecord, wins []WinCount, dropped []CodeResolution) *Dataset {
	ds := &Dataset{
		sourceURL:     sourceURL,
		loadedAt:      clock.Now(),
		records:       slices.Clone(records),
		wins:          slices.Clone(wins),
		dropped:       slices.Clone(dropped),
		winsByCountry: make(map[string]int, len(wins)),
		finalByYear:   make(map[int]int, len(records)),
	}
	for i, w := range ds.wins {
		if _, dup := ds.winsByCountry[w.Country]; !dup {
			ds.winsByCountry[w.Country] = i
		}
	}
	for i, rec := range ds.records {
		if _, dup := ds.finalByYear[rec.Year]; !dup {
			ds.finalByYear[rec.Year] = i
		}
	}
	return ds
}

// SourceURL is where the finals table was loaded from.
func (d *Dataset) SourceURL() string { return d.sourceURL }

// LoadedAt is when the dataset was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Records returns every final in source order.
func (d *Dataset) Records() []MatchRecord { return slices.Clone(d.records) }

// Wins returns the resolved win counts, highest first.
func (d *Dataset) Wins() []WinCount { return slices.Clone(d.wins) }

// Dropped returns the countries that could not be mapped to a code.
func (d *Dataset) Dropped() []CodeResolution { return slices.Clone(d.dropped) }

// WinsFor looks up the win count of a country.
func (d *Dataset) WinsFor(country string) (WinCount, bool) {
	i, ok := d.winsByCountry[country]
	if !ok {
		return WinCount{}, false
	}
	return d.wins[i], true
}

// Final looks up the final played in year. When the table lists a year more
// than once the first row wins.
func (d *Dataset) Final(year int) (MatchRecord, bool) {
	i, ok := d.finalByYear[year]
	if !ok {
		return MatchRecord{}, false
	}
	return d.records[i], true
}

// Countries returns the resolved countries in alphabetical order.
func (d *Dataset) Countries() []string {
	out := make([]string, len(d.wins))
	for i, w := range d.wins {
		out[i] = w.Country
	}
	sort.Strings(out)
	return out
}

// Years returns every distinct year in ascending order.
func (d *Dataset) Years() []int {
	out := make([]int, 0, len(d.finalByYear))
	for y := range d.finalByYear {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// DefaultCountry is the country with the most wins, or "" when none resolved.
func (d *Dataset) DefaultCountry() string {
	if len(d.wins) == 0 {
		return ""
	}
	return d.wins[0].Country
}

// DefaultYear is the most recent year, or 0 for an empty dataset.
func (d *Dataset) DefaultYear() int {
	latest := 0
	for y := range d.finalByYear {
		if y > latest {
			latest = y
		}
	}
	return latest
}

// TotalWins sums the wins of every resolved country.
func (d *Dataset) TotalWins() int {
	total := 0
	for _, w := range d.wins {
		total += w.Wins
	}
	return total
}
