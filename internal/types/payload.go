package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Rendering limits enforced before a payload leaves the core.
const (
	MaxListEntries          = 10
	MaxOptions              = 20
	MaxDisambiguationOption = 19
	MaxSummarySentences     = 2
)

// EmbedColor is the accent colour every payload is rendered with.
const EmbedColor = 0xFAD02C

// PayloadKind tags which variant a Payload carries.
type PayloadKind string

const (
	// KindArticle is a single resolved article
	KindArticle PayloadKind = "article"
	// KindArticleList is a listing of random articles
	KindArticleList PayloadKind = "article_list"
	// KindOptions is a listing of search candidates
	KindOptions PayloadKind = "options"
	// KindError is a user-facing error
	KindError PayloadKind = "error"
	// KindHelp lists the available commands
	KindHelp PayloadKind = "help"
)

// ErrorKind classifies an error payload.
type ErrorKind string

const (
	ErrPageNotFound       ErrorKind = "page_not_found"
	ErrDisambiguated      ErrorKind = "disambiguated"
	ErrInvalidCount       ErrorKind = "invalid_count"
	ErrInvalidType        ErrorKind = "invalid_type"
	ErrNoOptionsFound     ErrorKind = "no_options_found"
	ErrServiceUnavailable ErrorKind = "service_unavailable"
)

// ArticlePayload carries a single article and the image picked for it.
type ArticlePayload struct {
	Article ArticleRecord `json:"article"`
	Image   string        `json:"image,omitempty" validate:"omitempty,url"`
}

// ArticleListPayload carries an ordered listing of articles.
type ArticleListPayload struct {
	Title   string        `json:"title" validate:"required"`
	Entries []ListEntry   `json:"entries" validate:"max=10,dive"`
	Skipped []SkippedItem `json:"skipped,omitempty"`
}

// OptionsPayload carries search candidates for a query.
type OptionsPayload struct {
	Query   string   `json:"query"`
	Options []string `json:"options" validate:"min=1,max=20"`
}

// ErrorPayload carries a typed, user-facing error. Options is only set
// for disambiguation listings.
type ErrorPayload struct {
	Kind    ErrorKind `json:"kind" validate:"required,oneof=page_not_found disambiguated invalid_count invalid_type no_options_found service_unavailable"`
	Title   string    `json:"title" validate:"required"`
	Message string    `json:"message"`
	Options []string  `json:"options,omitempty" validate:"max=19"`
}

// CommandHelp describes one command for the help listing.
type CommandHelp struct {
	Name string `json:"name" validate:"required"`
	Help string `json:"help"`
}

// HelpPayload lists the available commands.
type HelpPayload struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Commands    []CommandHelp `json:"commands" validate:"dive"`
}

// Payload is the only value the core hands back to a host for rendering.
// Exactly one of the variant pointers is set, matching Kind.
type Payload struct {
	Kind        PayloadKind         `json:"kind" validate:"required,oneof=article article_list options error help"`
	Article     *ArticlePayload     `json:"article,omitempty"`
	ArticleList *ArticleListPayload `json:"article_list,omitempty"`
	Options     *OptionsPayload     `json:"options,omitempty"`
	Error       *ErrorPayload       `json:"error,omitempty"`
	Help        *HelpPayload        `json:"help,omitempty"`
	Color       int                 `json:"color"`
	RequestedBy string              `json:"requested_by"`
}

// Footer returns the attribution line shown under every payload.
func (p *Payload) Footer() string {
	return fmt.Sprintf("Requested by: %s", p.RequestedBy)
}

// IsError reports whether the payload is an error of the given kind.
func (p *Payload) IsError(kind ErrorKind) bool {
	return p.Kind == KindError && p.Error != nil && p.Error.Kind == kind
}

// Validate checks field limits and that the variant matches Kind.
func (p *Payload) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}

	set := 0
	for _, present := range []bool{p.Article != nil, p.ArticleList != nil, p.Options != nil, p.Error != nil, p.Help != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("payload must carry exactly one variant, got %d", set)
	}

	var ok bool
	switch p.Kind {
	case KindArticle:
		ok = p.Article != nil
	case KindArticleList:
		ok = p.ArticleList != nil
	case KindOptions:
		ok = p.Options != nil
	case KindError:
		ok = p.Error != nil
	case KindHelp:
		ok = p.Help != nil
	}
	if !ok {
		return fmt.Errorf("payload kind %q does not match its variant", p.Kind)
	}
	return nil
}
