package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gogithub "github.com/google/go-github/v60/github"
)

// contentsPerPage caps the root listing to a single page of entries.
const contentsPerPage = 50

// SearchContents lists the top level of fullName and returns entries whose
// name contains query, plus a flagged entry for every README file. A README
// that also matches query is therefore reported twice; deduplication by URL
// collapses the pair downstream.
func (c *Client) SearchContents(ctx context.Context, query, fullName string) []Result {
	return c.bestEffort(ctx, "list contents", func(ctx context.Context) ([]Result, error) {
		entries, err := c.listRoot(ctx, fullName)
		if err != nil {
			return nil, err
		}
		return matchContents(query, fullName, entries), nil
	})
}

// listRoot fetches the repository root. RepositoriesService.GetContents has
// no paging options, so the request is built by hand.
func (c *Client) listRoot(ctx context.Context, fullName string) ([]*gogithub.RepositoryContent, error) {
	u := fmt.Sprintf("repos/%s/contents?per_page=%d", fullName, contentsPerPage)
	req, err := c.gh.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building contents request: %w", err)
	}

	c.logger.Debug("listing contents", "repo", fullName)
	var entries []*gogithub.RepositoryContent
	resp, err := c.gh.Do(ctx, req, &entries)
	c.logResponse("list contents", resp)
	if err != nil {
		return nil, fmt.Errorf("listing contents of %s: %w", fullName, err)
	}
	return entries, nil
}

func matchContents(query, fullName string, entries []*gogithub.RepositoryContent) []Result {
	q := strings.ToLower(query)

	var results []Result
	for _, e := range entries {
		if e == nil {
			continue
		}
		name := strings.ToLower(e.GetName())

		if strings.Contains(name, q) {
			results = append(results, FileResult{
				Name:     e.GetName(),
				Path:     e.GetName(),
				FullName: fullName,
				URL:      e.GetHTMLURL(),
				Type:     e.GetType(),
			})
		}

		if e.GetType() == TypeFile && strings.Contains(name, "readme") {
			results = append(results, FileResult{
				Name:     ReadmeName,
				Path:     e.GetName(),
				FullName: fullName,
				URL:      e.GetHTMLURL(),
				Type:     TypeReadme,
			})
		}
	}
	return results
}
