// Package dashboard serves the World Cup winners page and its htmx fragments.
package dashboard

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/worldcup-dashboard/internal/domain"
	"github.com/couchcryptid/worldcup-dashboard/internal/observability"
)

const pageTitle = "FIFA World Cup Winners Dashboard"

// Outcome labels for the request counter.
const (
	outcomeOK         = "ok"
	outcomeBadRequest = "bad_request"
	outcomeNotFound   = "not_found"
)

var (
	errInvalidYear    = errors.New("invalid year")
	errUnknownYear    = errors.New("no final for year")
	errUnknownCountry = errors.New("unknown country")
)

// Handler renders the dashboard from a Dataset built at startup. The dataset
// and the derived figure are never modified, so requests share them freely.
type Handler struct {
	ds      *domain.Dataset
	figure  Figure
	logger  *slog.Logger
	metrics *observability.Metrics
	mux     *http.ServeMux
}

// NewHandler creates the dashboard routes for ds.
func NewHandler(ds *domain.Dataset, logger *slog.Logger, metrics *observability.Metrics) *Handler {
	h := &Handler{
		ds:      ds,
		figure:  NewChoropleth(ds.Wins()),
		logger:  logger,
		metrics: metrics,
		mux:     http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /{$}", h.handlePage)
	h.mux.HandleFunc("GET /fragments/wins", h.handleWins)
	h.mux.HandleFunc("GET /fragments/year", h.handleYear)
	h.mux.HandleFunc("GET /api/choropleth", h.handleChoropleth)
	h.mux.HandleFunc("GET /api/wins", h.handleSummary)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	v, err := h.pageView(r)
	if err != nil {
		h.fail(w, r, "page", err)
		return
	}
	h.observe("page", outcomeOK)
	renderPage(w, r, page(v), page(v))
}

func (h *Handler) handleWins(w http.ResponseWriter, r *http.Request) {
	v, err := h.pageView(r)
	if err != nil {
		h.fail(w, r, "wins", err)
		return
	}
	h.observe("wins", outcomeOK)
	renderPage(w, r, winsFragment(v.WinCount), page(v))
}

func (h *Handler) handleYear(w http.ResponseWriter, r *http.Request) {
	v, err := h.pageView(r)
	if err != nil {
		h.fail(w, r, "year", err)
		return
	}
	h.observe("year", outcomeOK)
	renderPage(w, r, yearFragment(v.Final), page(v))
}

func (h *Handler) handleChoropleth(w http.ResponseWriter, _ *http.Request) {
	h.observe("choropleth", outcomeOK)
	sharedobs.WriteJSON(w, http.StatusOK, h.figure)
}

type summary struct {
	SourceURL string                  `json:"source_url"`
	LoadedAt  time.Time               `json:"loaded_at"`
	Finals    int                     `json:"finals"`
	Wins      []domain.WinCount       `json:"wins"`
	Dropped   []domain.CodeResolution `json:"dropped"`
}

func (h *Handler) handleSummary(w http.ResponseWriter, _ *http.Request) {
	h.observe("summary", outcomeOK)
	dropped := h.ds.Dropped()
	if dropped == nil {
		dropped = []domain.CodeResolution{}
	}
	sharedobs.WriteJSON(w, http.StatusOK, summary{
		SourceURL: h.ds.SourceURL(),
		LoadedAt:  h.ds.LoadedAt(),
		Finals:    len(h.ds.Records()),
		Wins:      h.ds.Wins(),
		Dropped:   dropped,
	})
}

// pageView resolves the ?country= and ?year= selections, falling back to the
// dataset defaults when a parameter is absent or empty.
func (h *Handler) pageView(r *http.Request) (pageView, error) {
	q := r.URL.Query()

	country := strings.TrimSpace(q.Get("country"))
	if country == "" {
		country = h.ds.DefaultCountry()
	}
	year := h.ds.DefaultYear()
	if raw := strings.TrimSpace(q.Get("year")); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return pageView{}, errInvalidYear
		}
		year = y
	}

	v := pageView{
		Title:     pageTitle,
		Winners:   h.ds.Wins(),
		Figure:    h.figure,
		Countries: countryOptions(h.ds.Countries(), country),
		Years:     yearOptions(h.ds.Years(), year),
		SourceURL: h.ds.SourceURL(),
	}

	if country != "" {
		wc, ok := h.ds.WinsFor(country)
		if !ok {
			return pageView{}, errUnknownCountry
		}
		v.WinCount = newWinsView(wc)
	}
	if year != 0 {
		rec, ok := h.ds.Final(year)
		if !ok {
			return pageView{}, errUnknownYear
		}
		v.Final = newYearView(rec)
	}
	return v, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, view string, err error) {
	status, outcome := http.StatusNotFound, outcomeNotFound
	if errors.Is(err, errInvalidYear) {
		status, outcome = http.StatusBadRequest, outcomeBadRequest
	}
	h.observe(view, outcome)
	h.logger.Debug("dashboard request rejected",
		"view", view,
		"query", r.URL.RawQuery,
		"status", status,
		"error", err,
	)
	http.Error(w, err.Error(), status)
}

func (h *Handler) observe(view, outcome string) {
	h.metrics.DashboardRequests.WithLabelValues(view, outcome).Inc()
}
