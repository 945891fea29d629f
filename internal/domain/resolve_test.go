package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock resolver ---

type mockResolver struct {
	codes map[string]string
	err   error
	calls int
}

func (m *mockResolver) ResolveISO3(_ context.Context, country string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	code, ok := m.codes[country]
	if !ok {
		return "", ErrUnknownCountry
	}
	return code, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- tests ---

func TestResolveCodes_AllResolved(t *testing.T) {
	res := &mockResolver{codes: map[string]string{"Brazil": "BRA", "Italy": "ITA"}}
	wins := []WinCount{{Country: "Brazil", Wins: 5}, {Country: "Italy", Wins: 4}}

	kept, dropped := ResolveCodes(context.Background(), wins, res, discardLogger())

	assert.Equal(t, []WinCount{
		{Country: "Brazil", Wins: 5, ISO: "BRA"},
		{Country: "Italy", Wins: 4, ISO: "ITA"},
	}, kept)
	assert.Empty(t, dropped)
	assert.Equal(t, 2, res.calls)
}

func TestResolveCodes_DropsUnknownWithReason(t *testing.T) {
	res := &mockResolver{codes: map[string]string{"Brazil": "BRA"}}
	wins := []WinCount{{Country: "Brazil", Wins: 5}, {Country: "TBD", Wins: 1}}

	kept, dropped := ResolveCodes(context.Background(), wins, res, discardLogger())

	require.Len(t, kept, 1)
	assert.Equal(t, "Brazil", kept[0].Country)
	require.Len(t, dropped, 1)
	assert.Equal(t, "TBD", dropped[0].Country)
	assert.False(t, dropped[0].Resolved)
	assert.Empty(t, dropped[0].ISO)
	assert.Contains(t, dropped[0].Reason, "unknown country")
}

func TestResolveCodes_UnitedKingdomFallback(t *testing.T) {
	res := &mockResolver{err: errors.New("lookup unavailable")}
	wins := []WinCount{{Country: "United Kingdom", Wins: 1}, {Country: "Spain", Wins: 1}}

	kept, dropped := ResolveCodes(context.Background(), wins, res, discardLogger())

	assert.Equal(t, []WinCount{{Country: "United Kingdom", Wins: 1, ISO: "GBR"}}, kept)
	require.Len(t, dropped, 1)
	assert.Equal(t, "Spain", dropped[0].Country)
	assert.Equal(t, "lookup unavailable", dropped[0].Reason)
}

func TestResolveCodes_InvalidCodeFromResolver(t *testing.T) {
	res := &mockResolver{codes: map[string]string{"France": "fr"}}

	kept, dropped := ResolveCodes(context.Background(), []WinCount{{Country: "France", Wins: 2}}, res, discardLogger())

	assert.Empty(t, kept)
	require.Len(t, dropped, 1)
	assert.Contains(t, dropped[0].Reason, `invalid code "fr"`)
}

func TestResolveCodes_NilResolver(t *testing.T) {
	wins := []WinCount{{Country: "United Kingdom", Wins: 1}, {Country: "Italy", Wins: 4}}

	kept, dropped := ResolveCodes(context.Background(), wins, nil, discardLogger())

	assert.Equal(t, []WinCount{{Country: "United Kingdom", Wins: 1, ISO: "GBR"}}, kept)
	require.Len(t, dropped, 1)
	assert.Equal(t, "no resolver configured", dropped[0].Reason)
}

func TestIsISO3(t *testing.T) {
	assert.True(t, IsISO3("GBR"))
	assert.False(t, IsISO3("GB"))
	assert.False(t, IsISO3("gbr"))
	assert.False(t, IsISO3("GB1"))
	assert.False(t, IsISO3(""))
}
