package mediawiki

import (
	"context"
	"fmt"
	"net/url"
)

// Page is a resolved, non-disambiguation page.
type Page struct {
	PageID int
	Title  string
	URL    string
	Images []string
}

type infoResponse struct {
	Query struct {
		Pages []struct {
			PageID    int               `json:"pageid"`
			NS        int               `json:"ns"`
			Title     string            `json:"title"`
			Missing   bool              `json:"missing"`
			Special   bool              `json:"special"`
			Invalid   bool              `json:"invalid"`
			FullURL   string            `json:"fullurl"`
			PageProps map[string]string `json:"pageprops"`
		} `json:"pages"`
	} `json:"query"`
}

// Page resolves a title to a page. The title is never replaced by a
// search suggestion; only server-side redirects are followed.
//
// A missing title, or one outside the article namespace, returns
// *PageError. A disambiguation page returns *DisambiguationError carrying
// the titles it links to.
func (c *Client) Page(ctx context.Context, title string) (*Page, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "info|pageprops")
	params.Set("inprop", "url")
	params.Set("ppprop", "disambiguation")
	params.Set("redirects", "1")
	params.Set("titles", title)

	var resp infoResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("page %q: %w", title, err)
	}

	if len(resp.Query.Pages) == 0 {
		return nil, &PageError{Title: title}
	}
	info := resp.Query.Pages[0]
	if info.Missing || info.Invalid || info.Special || info.NS != 0 {
		return nil, &PageError{Title: title}
	}

	if _, ok := info.PageProps["disambiguation"]; ok {
		options, err := c.disambiguationOptions(ctx, info.Title)
		if err != nil {
			return nil, err
		}
		return nil, &DisambiguationError{
			Title:   info.Title,
			URL:     info.FullURL,
			Options: options,
		}
	}

	images, err := c.images(ctx, info.Title)
	if err != nil {
		return nil, err
	}

	return &Page{
		PageID: info.PageID,
		Title:  info.Title,
		URL:    info.FullURL,
		Images: images,
	}, nil
}

type imagesResponse struct {
	Continue map[string]string `json:"continue"`
	Query    struct {
		Pages []struct {
			Title     string `json:"title"`
			ImageInfo []struct {
				URL string `json:"url"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

// images lists the file URLs used on a page, following API continuation.
func (c *Client) images(ctx context.Context, title string) ([]string, error) {
	var urls []string
	cont := map[string]string{}

	for {
		params := url.Values{}
		params.Set("action", "query")
		params.Set("generator", "images")
		params.Set("gimlimit", "max")
		params.Set("prop", "imageinfo")
		params.Set("iiprop", "url")
		params.Set("titles", title)
		for k, v := range cont {
			params.Set(k, v)
		}

		var resp imagesResponse
		if err := c.get(ctx, params, &resp); err != nil {
			return nil, fmt.Errorf("images for %q: %w", title, err)
		}

		for _, page := range resp.Query.Pages {
			for _, info := range page.ImageInfo {
				if info.URL != "" {
					urls = append(urls, info.URL)
				}
			}
		}

		if len(resp.Continue) == 0 {
			return urls, nil
		}
		cont = resp.Continue
	}
}

type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
}

// disambiguationOptions fetches the rendered disambiguation page and
// extracts the titles of the entries it lists.
func (c *Client) disambiguationOptions(ctx context.Context, title string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", title)
	params.Set("prop", "text")
	params.Set("redirects", "1")

	var resp parseResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("disambiguation page %q: %w", title, err)
	}

	return ParseDisambiguation(resp.Parse.Text)
}
