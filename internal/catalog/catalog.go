// Package catalog implements the client for the restaurant catalog service, the
// upstream HTTP API listing takeaway restaurants by postcode.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.followtheprocess.codes/log"
)

// DefaultBaseURL is the base of the Just Eat restaurants-by-postcode endpoint, the
// postcode is appended verbatim.
const DefaultBaseURL = "https://uk.api.just-eat.io/discovery/uk/restaurants/enriched/bypostcode/"

// maxBodySize bounds how much of a response body is read, real catalog responses
// are a few MB at most.
const maxBodySize = 32 << 20

// ErrNetwork is the error kind for any failure to get a usable response from
// the catalog, every [*NetworkError] matches it with [errors.Is].
var ErrNetwork = errors.New("catalog request failed")

// Fetcher is the interface for retrieving raw catalog data for a postcode.
type Fetcher interface {
	// Fetch returns the raw response body listing restaurants near postcode.
	Fetch(ctx context.Context, postcode string) ([]byte, error)
}

// NetworkError is returned from [Client.Fetch] when the catalog could not be
// reached, responded with a non 2xx status or sent back nothing usable.
type NetworkError struct {
	Err        error  // The underlying cause
	URL        string // The URL that was requested
	StatusCode int    // HTTP status code, 0 if no response was received
}

// Error implements the error interface for [NetworkError].
func (n *NetworkError) Error() string {
	if n.StatusCode != 0 {
		return fmt.Sprintf("%s: GET %s: %d %s", ErrNetwork, n.URL, n.StatusCode, http.StatusText(n.StatusCode))
	}

	return fmt.Sprintf("%s: GET %s: %v", ErrNetwork, n.URL, n.Err)
}

// Unwrap returns the underlying cause.
func (n *NetworkError) Unwrap() error {
	return n.Err
}

// Is reports whether target is [ErrNetwork].
func (n *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// Client is a [Fetcher] talking to the catalog service over HTTP.
type Client struct {
	http      *http.Client
	logger    *log.Logger
	baseURL   string
	userAgent string
}

// New returns a new [Client] requesting postcodes under baseURL.
//
// If client is nil, one is created with [NewHTTPClient] and the default timeouts.
func New(baseURL, version string, client *http.Client, logger *log.Logger) Client {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout, DefaultConnectionTimeout)
	}

	return Client{
		http:      client,
		logger:    logger.Prefixed("catalog"),
		baseURL:   baseURL,
		userAgent: "go.followtheprocess.codes/grub " + version,
	}
}

// URL returns the full URL requested for postcode.
//
// Beyond what is needed for a valid URL path (spaces become %20) the postcode
// is not altered.
func (c Client) URL(postcode string) string {
	return c.baseURL + url.PathEscape(postcode)
}

// Fetch implements [Fetcher] for [Client], performing a single GET for postcode.
//
// There are no retries, any failure is returned as a [*NetworkError].
func (c Client) Fetch(ctx context.Context, postcode string) ([]byte, error) {
	target := c.URL(postcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: fmt.Errorf("invalid request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("Requesting restaurants", slog.String("url", target))

	start := time.Now()

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	defer res.Body.Close()

	c.logger.Debug(
		"Received catalog response",
		slog.String("url", target),
		slog.Int("status", res.StatusCode),
		slog.String("content-type", res.Header.Get("Content-Type")),
		slog.Duration("duration", time.Since(start)),
	)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &NetworkError{
			URL:        target,
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", res.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{URL: target, StatusCode: res.StatusCode, Err: fmt.Errorf("could not read response body: %w", err)}
	}

	if len(body) == 0 {
		return nil, &NetworkError{URL: target, Err: errors.New("empty response body")}
	}

	c.logger.Debug("Read catalog response body", slog.Int("bytes", len(body)))

	return body, nil
}
