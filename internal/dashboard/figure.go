package dashboard

import "github.com/couchcryptid/worldcup-dashboard/internal/domain"

// Figure is a Plotly figure, serialized as the JSON plotly.js expects.
type Figure struct {
	Data   []ChoroplethTrace `json:"data"`
	Layout Layout            `json:"layout"`
}

// ChoroplethTrace colors countries by their number of wins.
type ChoroplethTrace struct {
	Type          string   `json:"type"`
	LocationMode  string   `json:"locationmode"`
	Locations     []string `json:"locations"`
	Z             []int    `json:"z"`
	Text          []string `json:"text"`
	HoverTemplate string   `json:"hovertemplate"`
	ColorScale    string   `json:"colorscale"`
	ColorBar      ColorBar `json:"colorbar"`
}

// ColorBar labels the continuous color scale.
type ColorBar struct {
	Title Title `json:"title"`
}

// Layout is the subset of Plotly layout options the map sets.
type Layout struct {
	Title  Title `json:"title"`
	Geo    Geo   `json:"geo"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
}

// Title is a Plotly text title.
type Title struct {
	Text string `json:"text"`
}

// Geo configures the map projection frame.
type Geo struct {
	ShowFrame      bool `json:"showframe"`
	ShowCoastlines bool `json:"showcoastlines"`
}

const (
	figureTitle  = "World Cup Victories"
	figureWidth  = 1000
	figureHeight = 600
	colorScale   = "Viridis"
)

// NewChoropleth builds the world map of wins keyed by ISO3 code.
func NewChoropleth(wins []domain.WinCount) Figure {
	trace := ChoroplethTrace{
		Type:          "choropleth",
		LocationMode:  "ISO-3",
		Locations:     make([]string, 0, len(wins)),
		Z:             make([]int, 0, len(wins)),
		Text:          make([]string, 0, len(wins)),
		HoverTemplate: "<b>%{text}</b><br>ISO=%{location}<br>Wins=%{z}<extra></extra>",
		ColorScale:    colorScale,
		ColorBar:      ColorBar{Title: Title{Text: "Wins"}},
	}
	for _, w := range wins {
		trace.Locations = append(trace.Locations, w.ISO)
		trace.Z = append(trace.Z, w.Wins)
		trace.Text = append(trace.Text, w.Country)
	}

	return Figure{
		Data: []ChoroplethTrace{trace},
		Layout: Layout{
			Title:  Title{Text: figureTitle},
			Geo:    Geo{ShowFrame: false, ShowCoastlines: true},
			Width:  figureWidth,
			Height: figureHeight,
		},
	}
}
