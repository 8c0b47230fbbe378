// Package render formats search results as human-readable text.
package render

import (
	"fmt"
	"strings"

	"github.com/jacklau/openclaw-search/internal/github"
)

// descriptionLimit is the maximum number of characters of a repository
// description that is shown.
const descriptionLimit = 70

// hints are the example queries suggested when nothing was found.
var hints = []string{"openclaw skill", "openclaw use case", "openclaw docs"}

// Truncate returns the first n characters of s. It counts runes, so
// multi-byte text is never cut mid-character.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Partition splits results into repository hits and file hits, keeping the
// relative order within each group.
func Partition(results []github.Result) ([]github.RepoResult, []github.FileResult) {
	var repos []github.RepoResult
	var files []github.FileResult
	for _, r := range results {
		switch v := r.(type) {
		case github.RepoResult:
			repos = append(repos, v)
		case github.FileResult:
			files = append(files, v)
		}
	}
	return repos, files
}

// Report renders results for query. An empty result set renders NotFound.
func Report(query string, results []github.Result) string {
	if len(results) == 0 {
		return NotFound(query)
	}

	repos, files := Partition(results)

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Query: %s\n\n", query)

	if len(repos) > 0 {
		b.WriteString("📦 Repositories:\n")
		for i, r := range repos {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, r.FullName)
			if r.Description != "" {
				fmt.Fprintf(&b, "     %s\n", Truncate(r.Description, descriptionLimit))
			}
			fmt.Fprintf(&b, "     ⭐ %d | 🍴 %d\n", r.Stars, r.Forks)
			fmt.Fprintf(&b, "     🔗 %s\n", r.URL)
			b.WriteString("\n")
		}
	}

	if len(files) > 0 {
		b.WriteString("📄 Files:\n")
		for i, f := range files {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, f.Name)
			fmt.Fprintf(&b, "     🔗 %s\n", f.URL)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// NotFound renders the empty state for query with example queries.
func NotFound(query string) string {
	return fmt.Sprintf("No OpenClaw results found for %q\n\n💡 Try: %s\n", query, strings.Join(hints, " / "))
}
