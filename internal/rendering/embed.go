package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/wikiwally/internal/types"
)

// Chat embed limits, counted in runes.
const (
	MaxTitle       = 256
	MaxDescription = 4096
	MaxFields      = 25
	MaxFieldName   = 256
	MaxFieldValue  = 1024
	MaxFooter      = 2048
)

const possibleEntries = "Possible entries: "

// Embed is the chat-host representation of a payload.
type Embed struct {
	Title       string       `json:"title"`
	URL         string       `json:"url,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Image       string       `json:"image,omitempty"`
	Footer      string       `json:"footer"`
}

// EmbedField is one titled block of an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// BuildEmbed lays a payload out as an embed. The payload is validated
// first; an invalid payload returns a *RenderError.
func BuildEmbed(p *types.Payload) (*Embed, error) {
	if p == nil {
		return nil, &RenderError{Message: "payload is nil"}
	}
	if err := p.Validate(); err != nil {
		return nil, &RenderError{Message: "invalid payload", Cause: err}
	}

	e := &Embed{
		Color:  p.Color,
		Footer: clamp(p.Footer(), MaxFooter),
	}

	switch p.Kind {
	case types.KindArticle:
		article := p.Article.Article
		e.Title = article.Title
		e.URL = article.URL
		e.Description = article.Summary
		e.Image = p.Article.Image

	case types.KindArticleList:
		e.Title = p.ArticleList.Title
		for i, entry := range p.ArticleList.Entries {
			e.Fields = append(e.Fields, EmbedField{
				Name:  fmt.Sprintf("Article %d", i+1),
				Value: fmt.Sprintf("[%s](%s)", EscapeMarkdown(entry.Title), escapeURL(entry.URL)),
			})
		}

	case types.KindOptions:
		e.Title = "Article Options"
		e.Description = fmt.Sprintf("Input: %s", p.Options.Query)
		e.Fields = []EmbedField{{Name: possibleEntries, Value: joinLines(p.Options.Options), Inline: true}}

	case types.KindError:
		e.Title = p.Error.Title
		e.Description = p.Error.Message
		if len(p.Error.Options) > 0 {
			e.Fields = []EmbedField{{Name: possibleEntries, Value: joinLines(p.Error.Options), Inline: true}}
		}

	case types.KindHelp:
		e.Title = p.Help.Title
		e.Description = p.Help.Description
		for _, cmd := range p.Help.Commands {
			e.Fields = append(e.Fields, EmbedField{Name: cmd.Name, Value: cmd.Help})
		}
	}

	e.Title = clamp(e.Title, MaxTitle)
	e.Description = clamp(e.Description, MaxDescription)
	if len(e.Fields) > MaxFields {
		e.Fields = e.Fields[:MaxFields]
	}
	for i := range e.Fields {
		e.Fields[i].Name = clamp(e.Fields[i].Name, MaxFieldName)
		e.Fields[i].Value = clampLines(e.Fields[i].Value, MaxFieldValue)
	}
	return e, nil
}

func joinLines(lines []string) string {
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = EscapeMarkdown(line)
	}
	return strings.Join(escaped, "\n")
}

// clamp shortens s to at most limit runes.
func clamp(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// clampLines drops whole trailing lines until s fits, so a listing never
// ends on half an entry. A single oversized line is clamped.
func clampLines(s string, limit int) string {
	if len([]rune(s)) <= limit {
		return s
	}
	lines := strings.Split(s, "\n")
	for len(lines) > 1 {
		lines = lines[:len(lines)-1]
		joined := strings.Join(lines, "\n")
		if len([]rune(joined)) <= limit {
			return joined
		}
	}
	return clamp(lines[0], limit)
}
