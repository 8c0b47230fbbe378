// Package dedup removes repeated search hits and caps the result count.
package dedup

import "github.com/jacklau/openclaw-search/internal/github"

// MaxResults is the number of unique results kept for display.
const MaxResults = 8

// Unique returns results with repeated keys removed, keeping the first
// occurrence and the original order. Results with an empty key are dropped.
func Unique(results []github.Result) []github.Result {
	seen := make(map[string]struct{}, len(results))
	out := make([]github.Result, 0, len(results))
	for _, r := range results {
		key := r.Key()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Limit returns at most the first n results.
func Limit(results []github.Result, n int) []github.Result {
	if n < 0 {
		n = 0
	}
	if len(results) <= n {
		return results
	}
	return results[:n]
}
