package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var finalsHeaders = []string{"Year", "Winners", "Score", "Runners-up", "Venue", "Location", "Attendance", "Ref."}

func TestParseMatchRecords(t *testing.T) {
	t.Run("maps known columns and keeps extras", func(t *testing.T) {
		table := Table{
			Headers: finalsHeaders,
			Rows: [][]string{
				{"1930", "Uruguay", "4–2", "Argentina", "Estadio Centenario", "Montevideo, Uruguay", "68,346", ""},
				{"2018", "France", "4–2", "Croatia", "Luzhniki Stadium", "Moscow, Russia", "78,011", ""},
			},
		}

		records, skipped, err := ParseMatchRecords(table)

		require.NoError(t, err)
		assert.Equal(t, 0, skipped)
		require.Len(t, records, 2)
		assert.Equal(t, 1930, records[0].Year)
		assert.Equal(t, "Uruguay", records[0].Winners)
		assert.Equal(t, "Argentina", records[0].RunnersUp)
		assert.Equal(t, "4–2", records[0].Score)
		assert.Equal(t, "Estadio Centenario", records[0].Extra["Venue"])
		assert.Equal(t, "68,346", records[0].Extra["Attendance"])
		assert.NotContains(t, records[0].Extra, "Ref.")
		assert.Equal(t, "Croatia", records[1].RunnersUp)
	})

	t.Run("skips rows without a year", func(t *testing.T) {
		table := Table{
			Headers: []string{"Year", "Winners", "Runners-up"},
			Rows: [][]string{
				{"1950 [n 2]", "Uruguay", "Brazil"},
				{"Notes", "", ""},
				{"", "", ""},
			},
		}

		records, skipped, err := ParseMatchRecords(table)

		require.NoError(t, err)
		assert.Equal(t, 2, skipped)
		require.Len(t, records, 1)
		assert.Equal(t, 1950, records[0].Year)
		assert.Nil(t, records[0].Extra)
	})

	t.Run("trims header labels", func(t *testing.T) {
		table := Table{
			Headers: []string{" Year ", "Winners\n", "Runners-up"},
			Rows:    [][]string{{"2022", "Argentina", "France"}},
		}

		records, _, err := ParseMatchRecords(table)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Argentina", records[0].Winners)
	})

	t.Run("short rows yield empty cells", func(t *testing.T) {
		table := Table{
			Headers: []string{"Year", "Winners", "Runners-up"},
			Rows:    [][]string{{"2026"}},
		}

		records, _, err := ParseMatchRecords(table)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].Winners)
		assert.Empty(t, records[0].RunnersUp)
	})

	t.Run("missing runners-up column", func(t *testing.T) {
		table := Table{Headers: []string{"Year", "Winners"}}

		_, _, err := ParseMatchRecords(table)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "Runners-up")
	})
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
		ok   bool
	}{
		{"plain", "1930", 1930, true},
		{"with footnote", "1950[n 2]", 1950, true},
		{"with text", "2026 (future)", 2026, true},
		{"empty", "", 0, false},
		{"too short", "930", 0, false},
		{"words", "Year", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseYear(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
