package authpages

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

// isPartial reports whether only the page component should be rendered.
// Boosted requests replace the whole body, so they get the full document.
func isPartial(r *http.Request) bool {
	return htmx.IsHTMX(r) && !htmx.IsBoosted(r)
}
