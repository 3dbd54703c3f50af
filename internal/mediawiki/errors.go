package mediawiki

import (
	"fmt"
	"strings"
)

// Error represents a transport or API failure talking to MediaWiki.
type Error struct {
	URL     string
	Message string
	Code    string // MediaWiki API error code, empty for transport failures
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Code)
	}
	if e.Cause != nil {
		return fmt.Sprintf("mediawiki error for %s: %s: %v", e.URL, msg, e.Cause)
	}
	return fmt.Sprintf("mediawiki error for %s: %s", e.URL, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PageError reports that no page exists for a title.
type PageError struct {
	Title string
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %q does not match any pages", e.Title)
}

// DisambiguationError reports that a title is a disambiguation page.
// Options holds the titles the page refers to, sorted and deduplicated.
type DisambiguationError struct {
	Title   string
	URL     string
	Options []string
}

func (e *DisambiguationError) Error() string {
	return fmt.Sprintf("%q may refer to: %s", e.Title, strings.Join(e.Options, ", "))
}
