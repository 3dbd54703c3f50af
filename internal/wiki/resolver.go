package wiki

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/jonathan/wikiwally/internal/mediawiki"
	"github.com/jonathan/wikiwally/internal/types"
)

// FallbackPolicy decides what ResolveTitle does with a disambiguation page.
type FallbackPolicy int

const (
	// Strict returns the Disambiguated outcome to the caller.
	Strict FallbackPolicy = iota
	// RandomFallback picks one of the offered titles at random and
	// resolves it once more, without further fallback.
	RandomFallback
)

// DefaultBatchConcurrency bounds concurrent lookups in a random batch.
const DefaultBatchConcurrency = 4

// ResolverConfig holds optional resolver settings.
type ResolverConfig struct {
	// Pick returns a uniformly random index in [0, n). Defaults to rand.Intn.
	Pick func(n int) int
	// BatchConcurrency bounds concurrent lookups in ResolveRandomBatch.
	BatchConcurrency int
}

// Resolver turns queries and titles into articles using a KnowledgeBase.
// It holds no per-request state and is safe for concurrent use as long as
// Pick is.
type Resolver struct {
	kb          KnowledgeBase
	pick        func(n int) int
	concurrency int
}

// NewResolver creates a resolver. A nil config uses defaults.
func NewResolver(kb KnowledgeBase, config *ResolverConfig) *Resolver {
	r := &Resolver{
		kb:          kb,
		pick:        rand.Intn,
		concurrency: DefaultBatchConcurrency,
	}
	if config != nil {
		if config.Pick != nil {
			r.pick = config.Pick
		}
		if config.BatchConcurrency > 0 {
			r.concurrency = config.BatchConcurrency
		}
	}
	return r
}

// ResolveQuery resolves free text to the page of its first search result.
// No search results gives NotFound; a disambiguation page gives
// Disambiguated with the page's options. The returned error is only set
// for knowledge-base failures.
func (r *Resolver) ResolveQuery(ctx context.Context, text string) (Outcome, error) {
	candidates, err := r.kb.Search(ctx, text, 0)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to search for %q: %w", text, err)
	}
	if len(candidates) == 0 {
		return notFoundOutcome(), nil
	}
	return r.resolve(ctx, candidates[0], true)
}

// ResolveTitle resolves an exact title. With RandomFallback, a
// disambiguation page is replaced by one of its options chosen at random,
// and whatever that second lookup yields is returned.
func (r *Resolver) ResolveTitle(ctx context.Context, title string, policy FallbackPolicy) (Outcome, error) {
	return r.resolveTitle(ctx, title, policy, true)
}

func (r *Resolver) resolveTitle(ctx context.Context, title string, policy FallbackPolicy, withSummary bool) (Outcome, error) {
	outcome, err := r.resolve(ctx, title, withSummary)
	if err != nil || outcome.Kind != Disambiguated || policy == Strict {
		return outcome, err
	}

	options := outcome.Disambiguation.Options
	if len(options) == 0 {
		return outcome, nil
	}
	return r.resolve(ctx, options[r.pick(len(options))], withSummary)
}

// resolve looks up one title and, when it is a real page and withSummary
// is set, fetches its summary by that same title.
func (r *Resolver) resolve(ctx context.Context, title string, withSummary bool) (Outcome, error) {
	page, err := r.kb.Page(ctx, title)
	if err != nil {
		var disErr *mediawiki.DisambiguationError
		if errors.As(err, &disErr) {
			return disambiguatedOutcome(title, disErr.Options), nil
		}
		var pageErr *mediawiki.PageError
		if errors.As(err, &pageErr) {
			return notFoundOutcome(), nil
		}
		return Outcome{}, fmt.Errorf("failed to resolve %q: %w", title, err)
	}

	article := types.ArticleRecord{
		Title:  page.Title,
		URL:    page.URL,
		Images: page.Images,
	}
	if !withSummary {
		return resolvedOutcome(article), nil
	}

	summary, err := r.kb.Summary(ctx, title, types.MaxSummarySentences)
	if err != nil {
		var pageErr *mediawiki.PageError
		if errors.As(err, &pageErr) {
			return notFoundOutcome(), nil
		}
		return Outcome{}, fmt.Errorf("failed to summarize %q: %w", title, err)
	}

	article.Summary = LimitSentences(summary, types.MaxSummarySentences)
	return resolvedOutcome(article), nil
}
