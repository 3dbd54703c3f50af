package wiki

import (
	"fmt"

	"github.com/jonathan/wikiwally/internal/types"
)

// Chat embed limits the composer keeps payloads within.
const (
	maxTitleRunes       = 256
	maxDescriptionRunes = 4096
)

// User-facing wording of the payloads.
const (
	articleListTitle = "I found some articles for you!"

	pageErrorTitle   = "Page Error"
	pageErrorMessage = "The page you are looking for might not exist. Please try a different query!"

	disambiguationTitle   = "Disambiguation Error: There may be multiple entries for your query."
	disambiguationMessage = "Query inputted: %s"

	invalidCountTitle   = "The query %q is not a valid input."
	invalidTypeTitle    = "The query %q is not a valid integer."
	countMessage        = "Please input an integer from 1 to 10. If no number is entered, I'll send one article by default."
	maxEchoedInputRunes = 200

	noOptionsTitle   = "No options found."
	noOptionsMessage = "Articles for your query might not exist. Please try a different query!"

	unavailableTitle   = "Wikipedia is unavailable."
	unavailableMessage = "I couldn't reach Wikipedia just now. Please try again in a moment."

	helpTitle       = "WikiWally Bot Commands"
	helpDescription = "To use WikiWally Commands, enter ***.wiki [command name]*** "
)

// Composer builds payloads attributed to one requesting user.
type Composer struct {
	RequestedBy string
}

func (c Composer) payload(kind types.PayloadKind) *types.Payload {
	return &types.Payload{
		Kind:        kind,
		Color:       types.EmbedColor,
		RequestedBy: c.RequestedBy,
	}
}

// Article builds a single-article payload, picking its image with mode.
func (c Composer) Article(article types.ArticleRecord, mode ImageMode) *types.Payload {
	article.Title = truncate(article.Title, maxTitleRunes)
	article.Summary = truncate(LimitSentences(article.Summary, types.MaxSummarySentences), maxDescriptionRunes)

	p := c.payload(types.KindArticle)
	p.Article = &types.ArticlePayload{Article: article}
	if img, ok := SelectImage(article.Images, mode); ok {
		p.Article.Image = img
	}
	return p
}

// ArticleList builds a listing of random articles, keeping at most ten.
func (c Composer) ArticleList(entries []types.ListEntry, skipped []types.SkippedItem) *types.Payload {
	if len(entries) > types.MaxListEntries {
		entries = entries[:types.MaxListEntries]
	}

	p := c.payload(types.KindArticleList)
	p.ArticleList = &types.ArticleListPayload{
		Title:   articleListTitle,
		Entries: entries,
		Skipped: skipped,
	}
	return p
}

// Options lists search candidates for query, keeping at most twenty.
// An empty candidate list becomes a NoOptionsFound error.
func (c Composer) Options(query string, options []string) *types.Payload {
	if len(options) == 0 {
		return c.NoOptionsFound()
	}
	if len(options) > types.MaxOptions {
		options = options[:types.MaxOptions]
	}

	p := c.payload(types.KindOptions)
	p.Options = &types.OptionsPayload{
		Query:   query,
		Options: options,
	}
	return p
}

// Disambiguation lists the pages an ambiguous query may refer to, echoing
// the query the user typed. The listing is capped at nineteen entries, one
// fewer than the options listing.
func (c Composer) Disambiguation(query string, signal types.DisambiguationSignal) *types.Payload {
	options := signal.Options
	if len(options) > types.MaxDisambiguationOption {
		options = options[:types.MaxDisambiguationOption]
	}

	p := c.errorPayload(types.ErrDisambiguated, disambiguationTitle, fmt.Sprintf(disambiguationMessage, query))
	p.Error.Options = options
	return p
}

// PageNotFound reports a query with no matching page.
func (c Composer) PageNotFound() *types.Payload {
	return c.errorPayload(types.ErrPageNotFound, pageErrorTitle, pageErrorMessage)
}

// InvalidCount reports a random count outside 1 to 10.
func (c Composer) InvalidCount(raw string) *types.Payload {
	return c.errorPayload(types.ErrInvalidCount, fmt.Sprintf(invalidCountTitle, truncate(raw, maxEchoedInputRunes)), countMessage)
}

// InvalidType reports a random count that is not an integer.
func (c Composer) InvalidType(raw string) *types.Payload {
	return c.errorPayload(types.ErrInvalidType, fmt.Sprintf(invalidTypeTitle, truncate(raw, maxEchoedInputRunes)), countMessage)
}

// CountError maps a NormalizeCount failure to its payload.
func (c Composer) CountError(err *CountError) *types.Payload {
	if err.Kind == types.ErrInvalidType {
		return c.InvalidType(err.Raw)
	}
	return c.InvalidCount(err.Raw)
}

// NoOptionsFound reports an options lookup with no candidates.
func (c Composer) NoOptionsFound() *types.Payload {
	return c.errorPayload(types.ErrNoOptionsFound, noOptionsTitle, noOptionsMessage)
}

// ServiceUnavailable reports that the knowledge base could not be reached.
func (c Composer) ServiceUnavailable() *types.Payload {
	return c.errorPayload(types.ErrServiceUnavailable, unavailableTitle, unavailableMessage)
}

// Help lists the available commands.
func (c Composer) Help(commands []types.CommandHelp) *types.Payload {
	p := c.payload(types.KindHelp)
	p.Help = &types.HelpPayload{
		Title:       helpTitle,
		Description: helpDescription,
		Commands:    commands,
	}
	return p
}

func (c Composer) errorPayload(kind types.ErrorKind, title, message string) *types.Payload {
	p := c.payload(types.KindError)
	p.Error = &types.ErrorPayload{
		Kind:    kind,
		Title:   truncate(title, maxTitleRunes),
		Message: truncate(message, maxDescriptionRunes),
	}
	return p
}
