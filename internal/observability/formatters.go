// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/wikiwally/internal/rendering"
	"github.com/jonathan/wikiwally/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, shorten(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, shorten(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// shorten truncates long lines by rune so box borders stay aligned.
func shorten(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// PrintEmbed outputs an embed as a box: title, link, description, fields
// and footer.
func (p *Printer) PrintEmbed(e *rendering.Embed) {
	if e == nil {
		return
	}

	var sb strings.Builder
	if e.URL != "" {
		sb.WriteString(fmt.Sprintf("Link:   %s\n", e.URL))
	}
	if e.Image != "" {
		sb.WriteString(fmt.Sprintf("Image:  %s\n", e.Image))
	}
	if e.Description != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		for _, line := range wrap(e.Description, boxWidth-4) {
			sb.WriteString(line + "\n")
		}
	}

	for _, field := range e.Fields {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimSpace(field.Name) + "\n")
		for _, line := range strings.Split(field.Value, "\n") {
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(e.Footer)

	p.printBox(e.Title, strings.TrimPrefix(sb.String(), "\n"))
}

// PrintSkipped outputs the random-batch titles that were left out of a
// listing and why.
func (p *Printer) PrintSkipped(items []types.SkippedItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skipped %d articles:\n\n", len(items)))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", items[i].Title))
		sb.WriteString(fmt.Sprintf("  %s\n", items[i].Reason))
	}

	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(items)-maxItemsToShow))
	}

	p.printBox("SKIPPED ARTICLES", strings.TrimSuffix(sb.String(), "\n"))
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len([]rune(line))+1+len([]rune(word)) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
