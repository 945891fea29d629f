package dashboard

import (
	"context"
	"html/template"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/couchcryptid/worldcup-dashboard/internal/domain"
)

const (
	htmxScript   = "https://unpkg.com/htmx.org@2.0.4"
	plotlyScript = "https://cdn.plot.ly/plotly-2.35.2.min.js"
)

// pageView is everything the full dashboard page renders.
type pageView struct {
	Title     string
	Winners   []domain.WinCount
	Figure    Figure
	Countries []option
	Years     []option
	WinCount  *winsView
	Final     *yearView
	SourceURL string
}

type option struct {
	Value    string
	Selected bool
}

type winsView struct {
	Country string
	Message string
}

type yearView struct {
	Year     int
	Winner   string
	RunnerUp string
}

func newWinsView(w domain.WinCount) *winsView {
	return &winsView{Country: w.Country, Message: domain.WinMessage(w.Country, w.Wins)}
}

func newYearView(rec domain.MatchRecord) *yearView {
	return &yearView{Year: rec.Year, Winner: rec.Winners, RunnerUp: rec.RunnersUp}
}

func countryOptions(countries []string, selected string) []option {
	opts := make([]option, 0, len(countries))
	for _, c := range countries {
		opts = append(opts, option{Value: c, Selected: c == selected})
	}
	return opts
}

func yearOptions(years []int, selected int) []option {
	opts := make([]option, 0, len(years))
	for _, y := range years {
		opts = append(opts, option{Value: strconv.Itoa(y), Selected: y == selected})
	}
	return opts
}

var views = template.Must(template.New("views").Funcs(template.FuncMap{
	"htmxScript":   func() string { return htmxScript },
	"plotlyScript": func() string { return plotlyScript },
}).Parse(viewTemplates))

func execute(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return views.ExecuteTemplate(w, name, data)
	})
}

// TODO: port these components to .templ sources once templ generate runs in the build.

// page renders the complete dashboard.
func page(v pageView) templ.Component { return execute("page", v) }

// winsFragment renders the country readout swapped in by htmx.
func winsFragment(v *winsView) templ.Component { return execute("wins", v) }

// yearFragment renders the final details swapped in by htmx.
func yearFragment(v *yearView) templ.Component { return execute("year", v) }

const viewTemplates = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="{{htmxScript}}"></script>
<script src="{{plotlyScript}}"></script>
<style>
body { padding: 20px; font-family: sans-serif; }
h1, h2, .readout { text-align: center; }
.panel { width: 50%; margin: auto; }
.readout { margin: 20px; }
#choropleth { display: flex; justify-content: center; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>

<section id="winners">
<h2>All-Time World Cup Winners</h2>
<ul class="panel">
{{- range .Winners}}
<li>{{.Country}} ({{.Wins}} wins)</li>
{{- end}}
</ul>
</section>

<section>
<h2>World Cup Wins by Country</h2>
<div id="choropleth"></div>
<script>
(function () {
  var fig = {{.Figure}};
  Plotly.newPlot("choropleth", fig.data, fig.layout);
})();
</script>
</section>

<section>
<h2>Number of Wins by Country</h2>
<form class="panel" action="/" method="get">
<select id="country-select" name="country" hx-get="/fragments/wins" hx-target="#win-count" hx-trigger="change">
{{- range .Countries}}
<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>
{{- end}}
</select>
</form>
<div id="win-count" class="readout">{{template "wins" .WinCount}}</div>
</section>

<section>
<h2>Final Match Details by Year</h2>
<form class="panel" action="/" method="get">
<select id="year-select" name="year" hx-get="/fragments/year" hx-target="#year-details" hx-trigger="change">
{{- range .Years}}
<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>
{{- end}}
</select>
</form>
<div id="year-details" class="readout">{{template "year" .Final}}</div>
</section>

<footer class="readout"><small>Source: <a href="{{.SourceURL}}">{{.SourceURL}}</a></small></footer>
</body>
</html>
{{end}}

{{define "wins"}}{{with .}}{{.Message}}{{end}}{{end}}

{{define "year"}}{{with .}}<div>
<h3>World Cup {{.Year}}</h3>
<p>Winner: {{.Winner}}</p>
<p>Runner-up: {{.RunnerUp}}</p>
</div>{{end}}{{end}}
`
