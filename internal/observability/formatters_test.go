package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/wikiwally/internal/rendering"
	"github.com/jonathan/wikiwally/internal/types"
)

func TestPrintEmbed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEmbed(&rendering.Embed{
		Title:       "Quantum mechanics",
		URL:         "https://en.wikipedia.org/wiki/Quantum_mechanics",
		Description: "Quantum mechanics is a fundamental theory in physics. It describes nature at the scale of atoms.",
		Fields:      []rendering.EmbedField{{Name: "Possible entries: ", Value: "One\nTwo"}},
		Footer:      "Requested by: alice",
	})
	output := buf.String()

	assert.Contains(t, output, "Quantum mechanics")
	assert.Contains(t, output, "Link:   https://en.wikipedia.org/wiki/Quantum_mechanics")
	assert.Contains(t, output, "Possible entries:")
	assert.Contains(t, output, "• One")
	assert.Contains(t, output, "• Two")
	assert.Contains(t, output, "Requested by: alice")
	assert.True(t, strings.HasPrefix(output, "┌"))
}

func TestPrintEmbed_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEmbed(nil)

	assert.Empty(t, buf.String())
}

func TestPrintEmbed_LinesStayInsideBox(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEmbed(&rendering.Embed{
		Title:       strings.Repeat("Ä", 100),
		Description: strings.Repeat("word ", 60),
		Footer:      "Requested by: bob",
	})

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
}

func TestPrintSkipped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := make([]types.SkippedItem, 7)
	for i := range items {
		items[i] = types.SkippedItem{Title: fmt.Sprintf("Title %d", i), Reason: "disambiguated"}
	}
	p.PrintSkipped(items)
	output := buf.String()

	assert.Contains(t, output, "SKIPPED ARTICLES")
	assert.Contains(t, output, "Skipped 7 articles")
	assert.Contains(t, output, "Title 4")
	assert.NotContains(t, output, "Title 5")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintSkipped_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkipped(nil)
	assert.Empty(t, buf.String())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"supercalifragilistic"}, wrap("supercalifragilistic", 5))
}
