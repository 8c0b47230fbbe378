// Package intent maps a free-text query to the configured repository it is
// most likely about.
package intent

import (
	"strings"

	"github.com/jacklau/openclaw-search/internal/config"
)

// All is returned by Parse when no keyword matches. Callers then search every
// configured repository.
const All = ""

// Parse returns the repo-id of the first keyword, in config order, that
// appears in query. Matching is case-insensitive substring containment.
func Parse(query string, keywords config.Mapping) string {
	q := strings.ToLower(query)
	for _, kw := range keywords {
		if strings.Contains(q, strings.ToLower(kw.Key)) {
			return kw.Value
		}
	}
	return All
}
