package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Column labels of the finals table.
const (
	ColumnYear      = "Year"
	ColumnWinners   = "Winners"
	ColumnRunnersUp = "Runners-up"
	ColumnScore     = "Score"
)

// ErrMissingColumn reports that a required column is absent from the table.
var ErrMissingColumn = errors.New("missing column")

// yearRe matches the first four-digit year in a cell, e.g. "1930" or "1950 [n 2]".
var yearRe = regexp.MustCompile(`\b(\d{4})\b`)

// ParseMatchRecords maps a finals table to match records. Rows whose Year cell
// holds no four-digit year (sub-headers, notes, blank rows) are skipped; the
// number skipped is returned alongside the records.
func ParseMatchRecords(table Table) ([]MatchRecord, int, error) {
	idx := make(map[string]int, len(table.Headers))
	for i, h := range table.Headers {
		h = strings.TrimSpace(h)
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}

	for _, col := range []string{ColumnYear, ColumnWinners, ColumnRunnersUp} {
		if _, ok := idx[col]; !ok {
			return nil, 0, fmt.Errorf("parse match records: %w %q", ErrMissingColumn, col)
		}
	}

	records := make([]MatchRecord, 0, len(table.Rows))
	skipped := 0
	for _, row := range table.Rows {
		year, ok := parseYear(cell(row, idx[ColumnYear]))
		if !ok {
			skipped++
			continue
		}

		rec := MatchRecord{
			Year:      year,
			Winners:   cell(row, idx[ColumnWinners]),
			RunnersUp: cell(row, idx[ColumnRunnersUp]),
		}
		if i, ok := idx[ColumnScore]; ok {
			rec.Score = cell(row, i)
		}
		rec.Extra = extraColumns(table.Headers, row)
		records = append(records, rec)
	}

	return records, skipped, nil
}

// parseYear extracts the first four-digit number from a Year cell.
func parseYear(s string) (int, bool) {
	m := yearRe.FindStringSubmatch(s)
	if len(m) != 2 {
		return 0, false
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return y, true
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func extraColumns(headers, row []string) map[string]string {
	var extra map[string]string
	for i, h := range headers {
		h = strings.TrimSpace(h)
		switch h {
		case "", ColumnYear, ColumnWinners, ColumnRunnersUp, ColumnScore:
			continue
		}
		v := cell(row, i)
		if v == "" {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		if _, dup := extra[h]; !dup {
			extra[h] = v
		}
	}
	return extra
}
