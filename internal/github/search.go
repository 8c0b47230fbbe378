package github

import (
	"context"
	"fmt"

	gogithub "github.com/google/go-github/v60/github"
)

// SearchRepo looks up the repository fullName ("owner/name") through the
// repository search endpoint. It returns at most one RepoResult, and an empty
// slice on any failure.
func (c *Client) SearchRepo(ctx context.Context, fullName string) []Result {
	return c.bestEffort(ctx, "search repositories", func(ctx context.Context) ([]Result, error) {
		return c.searchRepo(ctx, fullName)
	})
}

func (c *Client) searchRepo(ctx context.Context, fullName string) ([]Result, error) {
	opts := &gogithub.SearchOptions{
		ListOptions: gogithub.ListOptions{PerPage: 1},
	}

	c.logger.Debug("searching repository", "repo", fullName)
	res, resp, err := c.gh.Search.Repositories(ctx, "repo:"+fullName, opts)
	c.logResponse("search repositories", resp)
	if err != nil {
		return nil, fmt.Errorf("searching repo:%s: %w", fullName, err)
	}

	if res == nil || len(res.Repositories) == 0 {
		return nil, nil
	}
	return []Result{convertRepo(res.Repositories[0])}, nil
}

func convertRepo(r *gogithub.Repository) RepoResult {
	return RepoResult{
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		URL:         r.GetHTMLURL(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
	}
}
