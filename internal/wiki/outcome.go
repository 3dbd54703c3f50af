package wiki

import "github.com/jonathan/wikiwally/internal/types"

// OutcomeKind tags a resolution result.
type OutcomeKind int

const (
	// NotFound means no page matched.
	NotFound OutcomeKind = iota
	// Resolved means a canonical article was found.
	Resolved
	// Disambiguated means the title maps to several pages.
	Disambiguated
)

func (k OutcomeKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case Disambiguated:
		return "disambiguated"
	default:
		return "not_found"
	}
}

// Outcome is the result of resolving a query or title. Article is set for
// Resolved, Disambiguation for Disambiguated, neither for NotFound.
type Outcome struct {
	Kind           OutcomeKind
	Article        *types.ArticleRecord
	Disambiguation *types.DisambiguationSignal
}

func resolvedOutcome(article types.ArticleRecord) Outcome {
	return Outcome{Kind: Resolved, Article: &article}
}

func disambiguatedOutcome(title string, options []string) Outcome {
	return Outcome{
		Kind: Disambiguated,
		Disambiguation: &types.DisambiguationSignal{
			QueriedTitle: title,
			Options:      options,
		},
	}
}

func notFoundOutcome() Outcome {
	return Outcome{Kind: NotFound}
}
