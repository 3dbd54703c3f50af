package mediawiki

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DefaultSearchResults matches the number of candidates pymediawiki-style
// clients return when no limit is given.
const DefaultSearchResults = 10

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

// Search returns page titles matching text, in relevance order.
// A limit of zero or less uses DefaultSearchResults.
func (c *Client) Search(ctx context.Context, text string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultSearchResults
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", text)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "")

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", text, err)
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, hit := range resp.Query.Search {
		titles = append(titles, hit.Title)
	}
	return titles, nil
}

type randomResponse struct {
	Query struct {
		Random []struct {
			Title string `json:"title"`
		} `json:"random"`
	} `json:"query"`
}

// Random returns count random article titles from the main namespace.
// The result is always a slice, including when count is one.
func (c *Client) Random(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("random: count must be positive, got %d", count)
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "random")
	params.Set("rnnamespace", "0")
	params.Set("rnlimit", strconv.Itoa(count))

	var resp randomResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("random titles: %w", err)
	}

	titles := make([]string, 0, len(resp.Query.Random))
	for _, r := range resp.Query.Random {
		titles = append(titles, r.Title)
	}
	return titles, nil
}

type extractResponse struct {
	Query struct {
		Pages []struct {
			Title   string `json:"title"`
			Missing bool   `json:"missing"`
			Invalid bool   `json:"invalid"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// Summary returns the first sentences of the page's plain-text intro.
// The title is looked up exactly; only server-side redirects are followed.
func (c *Client) Summary(ctx context.Context, title string, sentences int) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("exintro", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)
	if sentences > 0 {
		params.Set("exsentences", strconv.Itoa(sentences))
	}

	var resp extractResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return "", fmt.Errorf("summary %q: %w", title, err)
	}

	if len(resp.Query.Pages) == 0 {
		return "", &PageError{Title: title}
	}
	page := resp.Query.Pages[0]
	if page.Missing || page.Invalid {
		return "", &PageError{Title: title}
	}
	return page.Extract, nil
}
