// Package types provides type definitions for structured data used throughout the wikiwally system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ArticleRecord is a resolved encyclopedia article.
type ArticleRecord struct {
	Title   string   `json:"title" validate:"required"`
	URL     string   `json:"url" validate:"required,url"`
	Summary string   `json:"summary"`
	Images  []string `json:"images,omitempty"`
}

// ListEntry is one line of a multi-article listing.
type ListEntry struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// DisambiguationSignal reports that a title maps to more than one page.
// It is a control signal, not a failure.
type DisambiguationSignal struct {
	QueriedTitle string   `json:"queried_title"`
	Options      []string `json:"options"`
}

// SkippedItem records a random-batch title that did not resolve to an article.
type SkippedItem struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}
