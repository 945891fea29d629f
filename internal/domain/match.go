package domain

// Table is the cleaned text grid of one HTML table. Spanning cells are already
// expanded, so every row has one value per header position where the source
// provided one.
type Table struct {
	Headers []string
	Rows    [][]string
}

// MatchRecord is one World Cup final.
type MatchRecord struct {
	Year      int               `json:"year"`
	Winners   string            `json:"winners"`
	RunnersUp string            `json:"runners_up"`
	Score     string            `json:"score,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"` // remaining source columns keyed by header
}

// WinCount is the number of finals a country has won, joined to its ISO3 code.
type WinCount struct {
	Country string `json:"country"`
	Wins    int    `json:"wins"`
	ISO     string `json:"iso,omitempty"`
}

// CodeResolution is the outcome of resolving one country name to a code.
type CodeResolution struct {
	Country  string `json:"country"`
	ISO      string `json:"iso,omitempty"`
	Resolved bool   `json:"resolved"`
	Reason   string `json:"reason,omitempty"` // why resolution failed, empty on success
}
