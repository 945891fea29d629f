package dataset_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/worldcup-dashboard/internal/adapter/countrycode"
	"github.com/couchcryptid/worldcup-dashboard/internal/dataset"
	"github.com/couchcryptid/worldcup-dashboard/internal/domain"
	"github.com/couchcryptid/worldcup-dashboard/internal/observability"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockSource struct {
	table domain.Table
	err   error
	calls int
}

func (m *mockSource) FetchTable(_ context.Context) (domain.Table, error) {
	m.calls++
	return m.table, m.err
}

type mapResolver map[string]string

func (m mapResolver) ResolveISO3(_ context.Context, country string) (string, error) {
	if code, ok := m[country]; ok {
		return code, nil
	}
	return "", domain.ErrUnknownCountry
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sourceURL = "https://example.test/wiki/finals"

func finalsTable() domain.Table {
	return domain.Table{
		Headers: []string{"Year", "Winners", "Score", "Runners-up", "Venue"},
		Rows: [][]string{
			{"1930", "Uruguay", "4–2", "Argentina", "Estadio Centenario"},
			{"1954", "West Germany", "3–2", "Hungary", "Wankdorf Stadium"},
			{"1966", "England", "4–2 (a.e.t.)", "West Germany", "Wembley Stadium"},
			{"1970", "Brazil", "4–1", "Italy", "Estadio Azteca"},
			{"1974", "West Germany", "2–1", "Netherlands", "Olympiastadion"},
			{"1990", "West Germany", "1–0", "Argentina", "Stadio Olimpico"},
			{"2002", "Brazil", "2–0", "Germany", "International Stadium Yokohama"},
			{"2014", "Germany", "1–0 (a.e.t.)", "Argentina", "Maracanã"},
			{"2018", "France", "4–2", "Croatia", "Luzhniki Stadium"},
			{"Total", "", "", "", ""},
		},
	}
}

// --- tests ---

func TestBuilder_Build(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2026, 6, 11, 12, 0, 0, 0, time.UTC))
	domain.SetClock(fake)
	t.Cleanup(func() { domain.SetClock(clockwork.NewRealClock()) })

	src := &mockSource{table: finalsTable()}
	metrics := observability.NewMetricsForTesting()
	b := dataset.New(src, countrycode.NewResolver(), sourceURL, discardLogger(), metrics)

	require.Error(t, b.CheckReadiness(context.Background()))

	ds, err := b.Build(context.Background())
	require.NoError(t, err)

	want := []domain.WinCount{
		{Country: "Germany", Wins: 4, ISO: "DEU"},
		{Country: "Brazil", Wins: 2, ISO: "BRA"},
		{Country: "Uruguay", Wins: 1, ISO: "URY"},
		{Country: "United Kingdom", Wins: 1, ISO: "GBR"},
		{Country: "France", Wins: 1, ISO: "FRA"},
	}
	if diff := cmp.Diff(want, ds.Wins()); diff != "" {
		t.Errorf("wins mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, ds.Dropped())
	assert.Len(t, ds.Records(), 9)
	assert.Equal(t, 9, ds.TotalWins())
	assert.Equal(t, "Germany", ds.DefaultCountry())
	assert.Equal(t, 2018, ds.DefaultYear())
	assert.Equal(t, sourceURL, ds.SourceURL())
	assert.Equal(t, fake.Now(), ds.LoadedAt())
	assert.Equal(t, 1, src.calls)

	final, ok := ds.Final(1966)
	require.True(t, ok)
	assert.Equal(t, "United Kingdom", final.Winners)
	assert.Equal(t, "Germany", final.RunnersUp)

	require.NoError(t, b.CheckReadiness(context.Background()))
	assert.Equal(t, 9.0, testutil.ToFloat64(metrics.MatchRecords))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SkippedRows))
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.CountriesResolved))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CountriesDropped))
	assert.Equal(t, float64(fake.Now().Unix()), testutil.ToFloat64(metrics.DatasetLoadedAt))
}

func TestBuilder_Build_DropsUnresolvedCountries(t *testing.T) {
	src := &mockSource{table: finalsTable()}
	metrics := observability.NewMetricsForTesting()
	res := mapResolver{"Germany": "DEU", "Brazil": "BRA"}
	b := dataset.New(src, res, sourceURL, discardLogger(), metrics)

	ds, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Wins(), 3)
	_, ok := ds.WinsFor("Uruguay")
	assert.False(t, ok)

	var names []string
	for _, d := range ds.Dropped() {
		assert.False(t, d.Resolved)
		assert.NotEmpty(t, d.Reason)
		names = append(names, d.Country)
	}
	assert.Equal(t, []string{"Uruguay", "France"}, names)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CountriesDropped))
}

func TestBuilder_Build_SourceError(t *testing.T) {
	srcErr := errors.New("connection refused")
	b := dataset.New(&mockSource{err: srcErr}, countrycode.NewResolver(), sourceURL, discardLogger(), observability.NewMetricsForTesting())

	ds, err := b.Build(context.Background())

	require.Error(t, err)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, srcErr)
	assert.Error(t, b.CheckReadiness(context.Background()))
}

func TestBuilder_Build_MissingColumn(t *testing.T) {
	src := &mockSource{table: domain.Table{
		Headers: []string{"Year", "Champion"},
		Rows:    [][]string{{"1930", "Uruguay"}},
	}}
	b := dataset.New(src, countrycode.NewResolver(), sourceURL, discardLogger(), observability.NewMetricsForTesting())

	_, err := b.Build(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestBuilder_Build_NoFinals(t *testing.T) {
	src := &mockSource{table: domain.Table{
		Headers: []string{"Year", "Winners", "Runners-up"},
		Rows:    [][]string{{"TBD", "", ""}},
	}}
	b := dataset.New(src, countrycode.NewResolver(), sourceURL, discardLogger(), observability.NewMetricsForTesting())

	_, err := b.Build(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no finals found")
}
