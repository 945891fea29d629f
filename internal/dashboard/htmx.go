package dashboard

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// htmxRequestHeader is set by htmx on every request it issues.
const htmxRequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}

// renderPage writes fragment for htmx requests and full otherwise, so fragment
// URLs still work when opened directly.
func renderPage(w http.ResponseWriter, r *http.Request, fragment, full templ.Component) {
	w.Header().Add("Vary", htmxRequestHeader)
	if IsHTMXRequest(r) {
		templ.Handler(fragment).ServeHTTP(w, r)
		return
	}
	templ.Handler(full).ServeHTTP(w, r)
}
