package wiki

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/wikiwally/internal/types"
)

// Batch is the result of a random-article request. Single is set when one
// article was requested; Entries otherwise. Titles that did not resolve to
// an article are listed in Skipped and left out of Entries.
type Batch struct {
	Single  *types.ArticleRecord
	Entries []types.ListEntry
	Skipped []types.SkippedItem
}

// itemResult is the resolution of one random title, stored by index so the
// batch keeps the order the titles were drawn in.
type itemResult struct {
	entry   *types.ListEntry
	skipped *types.SkippedItem
	err     error
}

// ResolveRandomBatch draws count random titles and resolves each with
// RandomFallback. Items are resolved concurrently and independently: a
// title that stays ambiguous, is missing, or fails to load is skipped
// without affecting the others. An error is returned only when the titles
// cannot be drawn or every item failed on the knowledge base.
func (r *Resolver) ResolveRandomBatch(ctx context.Context, count int) (*Batch, error) {
	if count < MinRandomCount || count > MaxRandomCount {
		return nil, fmt.Errorf("random batch size %d out of range %d to %d", count, MinRandomCount, MaxRandomCount)
	}

	titles, err := r.kb.Random(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to draw random titles: %w", err)
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("knowledge base returned no random titles")
	}

	if count == 1 {
		return r.resolveSingle(ctx, titles[0])
	}

	results := make([]itemResult, len(titles))
	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for i, title := range titles {
		i, title := i, title
		g.Go(func() error {
			results[i] = r.resolveItem(ctx, title)
			return nil
		})
	}
	_ = g.Wait()

	batch := &Batch{Entries: make([]types.ListEntry, 0, len(titles))}
	var firstErr error
	failed := 0
	for i, res := range results {
		switch {
		case res.err != nil:
			failed++
			if firstErr == nil {
				firstErr = res.err
			}
			batch.Skipped = append(batch.Skipped, types.SkippedItem{Title: titles[i], Reason: res.err.Error()})
		case res.skipped != nil:
			batch.Skipped = append(batch.Skipped, *res.skipped)
		default:
			batch.Entries = append(batch.Entries, *res.entry)
		}
	}

	if failed == len(titles) {
		return nil, firstErr
	}
	return batch, nil
}

func (r *Resolver) resolveSingle(ctx context.Context, title string) (*Batch, error) {
	outcome, err := r.ResolveTitle(ctx, title, RandomFallback)
	if err != nil {
		return nil, err
	}
	if outcome.Kind != Resolved {
		return &Batch{Skipped: []types.SkippedItem{{Title: title, Reason: outcome.Kind.String()}}}, nil
	}
	return &Batch{Single: outcome.Article}, nil
}

// resolveItem resolves a listing entry. Listings show no summary, so none
// is fetched.
func (r *Resolver) resolveItem(ctx context.Context, title string) itemResult {
	outcome, err := r.resolveTitle(ctx, title, RandomFallback, false)
	if err != nil {
		return itemResult{err: err}
	}
	if outcome.Kind != Resolved {
		return itemResult{skipped: &types.SkippedItem{Title: title, Reason: outcome.Kind.String()}}
	}
	return itemResult{entry: &types.ListEntry{
		Title: outcome.Article.Title,
		URL:   outcome.Article.URL,
	}}
}
