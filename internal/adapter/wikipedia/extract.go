package wikipedia

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/couchcryptid/worldcup-dashboard/internal/domain"
	"golang.org/x/text/unicode/norm"
)

// ErrNoMatchingTable is returned when no table on the page has the requested column.
var ErrNoMatchingTable = errors.New("no table with matching column")

// footnoteRe matches bracketed reference markers, e.g. "[12]" or "[n 3]".
var footnoteRe = regexp.MustCompile(`\[[^\]]*\]`)

// maxSpan caps rowspan/colspan so a malformed attribute cannot blow up the grid.
const maxSpan = 1000

// ExtractTable parses an HTML document and returns the first table whose
// header row contains a cell labelled column. Header rows are rows with no
// <td> cells; the first one supplies the labels and later ones are ignored.
func ExtractTable(r io.Reader, column string) (domain.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.Table{}, fmt.Errorf("parse html: %w", err)
	}

	doc.Find("sup.reference, style, script").Remove()

	var (
		found domain.Table
		ok    bool
	)
	doc.Find("table").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := readTable(s)
		if hasHeader(t.Headers, column) {
			found, ok = t, true
			return false
		}
		return true
	})

	if !ok {
		return domain.Table{}, fmt.Errorf("%w %q", ErrNoMatchingTable, column)
	}
	return found, nil
}

func hasHeader(headers []string, column string) bool {
	for _, h := range headers {
		if strings.Contains(h, column) {
			return true
		}
	}
	return false
}

// readTable expands one <table> into a grid. Nested tables are skipped by only
// looking at rows whose closest table is s.
func readTable(s *goquery.Selection) domain.Table {
	var rows []*goquery.Selection
	s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.Closest("table").IsSelection(s) {
			rows = append(rows, tr)
		}
	})

	grid := expandSpans(rows)

	var t domain.Table
	headerSeen := false
	for i, tr := range rows {
		if tr.ChildrenFiltered("td").Length() == 0 {
			if !headerSeen {
				t.Headers = grid[i]
				headerSeen = true
			}
			continue
		}
		t.Rows = append(t.Rows, grid[i])
	}
	return t
}

// pending is a cell carried into following rows by rowspan.
type pending struct {
	text string
	left int
}

// expandSpans lays out rows as a rectangular-ish grid, copying spanning cells
// into every position they cover.
func expandSpans(rows []*goquery.Selection) [][]string {
	grid := make([][]string, len(rows))
	var carry []pending // indexed by column

	for i, tr := range rows {
		var out []string
		col := 0

		fillCarried := func() {
			for col < len(carry) && carry[col].left > 0 {
				out = append(out, carry[col].text)
				carry[col].left--
				col++
			}
		}

		tr.ChildrenFiltered("th, td").Each(func(_ int, c *goquery.Selection) {
			fillCarried()
			text := cellText(c)
			colspan := spanAttr(c, "colspan")
			rowspan := spanAttr(c, "rowspan")
			for k := 0; k < colspan; k++ {
				out = append(out, text)
				if rowspan > 1 {
					for len(carry) <= col {
						carry = append(carry, pending{})
					}
					carry[col] = pending{text: text, left: rowspan - 1}
				}
				col++
			}
		})
		// Carried cells past the row's last cell, padding any gap before them.
		for c := col; c < len(carry); c++ {
			if carry[c].left == 0 {
				continue
			}
			for len(out) < c {
				out = append(out, "")
			}
			out = append(out, carry[c].text)
			carry[c].left--
		}
		grid[i] = out
	}
	return grid
}

func spanAttr(c *goquery.Selection, name string) int {
	v, ok := c.Attr(name)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	return min(n, maxSpan)
}

// cellText returns the visible text of a cell with footnote markers removed,
// whitespace (including non-breaking spaces) collapsed, and Unicode normalized
// to NFC.
func cellText(c *goquery.Selection) string {
	text := footnoteRe.ReplaceAllString(c.Text(), "")
	text = strings.Join(strings.Fields(text), " ")
	return norm.NFC.String(text)
}
