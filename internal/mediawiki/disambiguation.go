package mediawiki

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// namespaces are the title prefixes of pages outside the article namespace.
var namespaces = map[string]bool{
	"talk": true, "user": true, "wikipedia": true, "wp": true, "project": true,
	"file": true, "image": true, "media": true, "mediawiki": true, "template": true,
	"help": true, "category": true, "portal": true, "draft": true, "module": true,
	"special": true, "timedtext": true, "book": true, "education program": true,
	"gadget": true, "gadget definition": true, "topic": true,
}

// ParseDisambiguation extracts the option titles from the HTML of a
// disambiguation page. Each list item contributes the title of its first
// link to an existing article. Red links, interwiki links and links into
// other namespaces are skipped, and items without such a link contribute
// nothing. Table of contents entries are ignored. The result is sorted and
// deduplicated.
func ParseDisambiguation(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	seen := make(map[string]bool)
	var options []string

	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		if class, _ := li.Attr("class"); strings.Contains(class, "tocsection") {
			return
		}

		li.Find("a[title]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			title := cleanWhitespace(a.AttrOr("title", ""))
			if !isArticleLink(a, title) {
				return true
			}
			if !seen[title] {
				seen[title] = true
				options = append(options, title)
			}
			return false
		})
	})

	sort.Strings(options)
	return options, nil
}

// isArticleLink reports whether a points at an existing main-namespace
// article on the same wiki.
func isArticleLink(a *goquery.Selection, title string) bool {
	if title == "" || a.HasClass("new") || a.HasClass("extiw") {
		return false
	}

	href := a.AttrOr("href", "")
	if !strings.HasPrefix(href, "/wiki/") {
		return false
	}

	if prefix, _, ok := strings.Cut(title, ":"); ok {
		if isNamespace(prefix) {
			return false
		}
	}
	return true
}

// isNamespace reports whether prefix names a non-article namespace,
// including its talk namespace.
func isNamespace(prefix string) bool {
	p := strings.ToLower(strings.TrimSpace(prefix))
	if namespaces[p] {
		return true
	}
	if base, ok := strings.CutSuffix(p, " talk"); ok {
		return namespaces[base]
	}
	return false
}

// cleanWhitespace collapses runs of whitespace into single spaces.
func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
