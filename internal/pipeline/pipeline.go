package pipeline

import (
	"context"
	"log/slog"

	"github.com/jacklau/openclaw-search/internal/config"
	"github.com/jacklau/openclaw-search/internal/dedup"
	"github.com/jacklau/openclaw-search/internal/github"
	"github.com/jacklau/openclaw-search/internal/intent"
)

// Searcher is the subset of github.Client used by the pipeline.
type Searcher interface {
	SearchRepo(ctx context.Context, fullName string) []github.Result
	SearchContents(ctx context.Context, query, fullName string) []github.Result
}

// Compile-time check that *github.Client satisfies Searcher.
var _ Searcher = (*github.Client)(nil)

// PipelineDeps holds the dependencies for the Pipeline.
type PipelineDeps struct {
	Searcher Searcher
	Keywords config.Mapping
	Repos    config.Mapping
	Logger   *slog.Logger
}

// Pipeline runs a query through intent parsing, the GitHub searches, and
// result deduplication. Calls are made one at a time.
type Pipeline struct {
	deps PipelineDeps
}

// New creates a new Pipeline with the given dependencies.
func New(deps PipelineDeps) *Pipeline {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Pipeline{deps: deps}
}

// Run returns the unique results for query, capped at dedup.MaxResults.
func (p *Pipeline) Run(ctx context.Context, query string) []github.Result {
	all := p.Collect(ctx, query)
	unique := dedup.Unique(all)
	p.deps.Logger.Debug("merged results", "raw", len(all), "unique", len(unique))
	return dedup.Limit(unique, dedup.MaxResults)
}

// Collect issues the searches for query and concatenates their results in
// call order, without deduplication.
//
// When the query names a configured keyword, the mapped repository is looked
// up and its top-level contents searched. Otherwise every configured
// repository is looked up in config order.
func (p *Pipeline) Collect(ctx context.Context, query string) []github.Result {
	repoID := intent.Parse(query, p.deps.Keywords)
	if repoID != intent.All {
		return p.collectTargeted(ctx, query, repoID)
	}

	p.deps.Logger.Debug("no keyword matched, searching all repos", "repos", len(p.deps.Repos))
	var results []github.Result
	for _, fullName := range p.deps.Repos.Values() {
		results = append(results, p.deps.Searcher.SearchRepo(ctx, fullName)...)
	}
	return results
}

func (p *Pipeline) collectTargeted(ctx context.Context, query, repoID string) []github.Result {
	fullName, ok := p.deps.Repos.Get(repoID)
	if !ok || fullName == "" {
		p.deps.Logger.Debug("keyword maps to unknown repo", "repo_id", repoID)
		return nil
	}

	p.deps.Logger.Debug("keyword matched", "repo_id", repoID, "repo", fullName)
	var results []github.Result
	results = append(results, p.deps.Searcher.SearchRepo(ctx, fullName)...)
	results = append(results, p.deps.Searcher.SearchContents(ctx, query, fullName)...)
	return results
}
