// Package mediawiki provides a small client for the MediaWiki Action API.
// It covers the lookups wikiwally needs: search, page resolution with
// disambiguation detection, sentence-limited summaries and random titles.
package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultAPIURL is the English Wikipedia Action API endpoint.
const DefaultAPIURL = "https://en.wikipedia.org/w/api.php"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the bot to Wikimedia, as their API policy requires.
const DefaultUserAgent = "WikiWally/1.0 (https://github.com/jonathan/wikiwally)"

// DefaultRequestsPerSecond keeps the client well inside Wikimedia's etiquette limits.
const DefaultRequestsPerSecond = 10.0

// Options configures the client.
type Options struct {
	APIURL            string
	Timeout           time.Duration
	UserAgent         string
	RequestsPerSecond float64 // zero or negative disables client-side throttling
	Headers           map[string]string
	HTTPClient        *http.Client
}

// DefaultOptions returns sensible defaults for talking to English Wikipedia.
func DefaultOptions() *Options {
	return &Options{
		APIURL:            DefaultAPIURL,
		Timeout:           DefaultTimeout,
		UserAgent:         DefaultUserAgent,
		RequestsPerSecond: DefaultRequestsPerSecond,
	}
}

// Client is a MediaWiki Action API client. It holds no per-request state
// and is safe for concurrent use.
type Client struct {
	apiURL    string
	userAgent string
	headers   map[string]string
	http      *http.Client
	limiter   *rate.Limiter
}

// New creates a client. A nil opts uses DefaultOptions.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	parsedURL, err := url.Parse(apiURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     apiURL,
			Message: "invalid API URL",
			Cause:   err,
		}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := &Client{
		apiURL:    apiURL,
		userAgent: userAgent,
		headers:   opts.Headers,
		http:      httpClient,
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return c, nil
}

// apiError is the error object MediaWiki returns with HTTP 200.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// get runs one Action API query and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("format", "json")
	params.Set("formatversion", "2")
	reqURL := c.apiURL + "?" + params.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{
				URL:     reqURL,
				Message: "rate limiter wait aborted",
				Cause:   err,
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &Error{
			URL:     reqURL,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{
			URL:     reqURL,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			URL:     reqURL,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return &Error{
			URL:     reqURL,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	var envelope struct {
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &Error{
			URL:     reqURL,
			Message: "failed to decode response",
			Cause:   err,
		}
	}
	if envelope.Error != nil {
		return &Error{
			URL:     reqURL,
			Message: envelope.Error.Info,
			Code:    envelope.Error.Code,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{
			URL:     reqURL,
			Message: "failed to decode response",
			Cause:   err,
		}
	}
	return nil
}
