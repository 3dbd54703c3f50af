// Package wiki resolves user queries against the encyclopedia and composes
// the payloads handed back to a chat host.
package wiki

import (
	"context"

	"github.com/jonathan/wikiwally/internal/mediawiki"
)

//go:generate mockgen -source=knowledge.go -destination=mocks/mock_knowledge.go -package=mocks

// KnowledgeBase is the encyclopedia lookup capability the resolver needs.
//
// Page reports the two control cases as typed errors:
// *mediawiki.DisambiguationError and *mediawiki.PageError. Any other error
// is a transport or service failure.
type KnowledgeBase interface {
	Search(ctx context.Context, text string, limit int) ([]string, error)
	Page(ctx context.Context, title string) (*mediawiki.Page, error)
	Summary(ctx context.Context, title string, sentences int) (string, error)
	Random(ctx context.Context, count int) ([]string, error)
}

var _ KnowledgeBase = (*mediawiki.Client)(nil)
