package catalog

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// HTTP config.
const (
	// DefaultTimeout is the default amount of time allowed for the entire request/response
	// cycle of a single catalog request.
	DefaultTimeout = 30 * time.Second

	// DefaultConnectionTimeout is the default amount of time allowed for the HTTP connection/TLS
	// handshake of a single catalog request.
	DefaultConnectionTimeout = 10 * time.Second

	// MaxRedirects is the number of redirects followed before a catalog request is abandoned.
	MaxRedirects = 3

	// Every request goes to the one catalog host, so the idle pool is sized for a
	// single host rather than shared between many.
	idleConns       = 2
	idleConnTimeout = 90 * time.Second
)

// NewHTTPClient returns a new HTTP client for talking to the catalog.
//
// connectionTimeout bounds dialing and the TLS handshake. timeout bounds the
// whole request and, separately, how long the catalog may take to start
// responding once the request is sent. Redirects are followed up to [MaxRedirects] times.
func NewHTTPClient(timeout, connectionTimeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: connectionTimeout,
			}).DialContext,
			MaxIdleConns:          idleConns,
			MaxIdleConnsPerHost:   idleConns,
			IdleConnTimeout:       idleConnTimeout,
			TLSHandshakeTimeout:   connectionTimeout,
			ResponseHeaderTimeout: timeout,
			ForceAttemptHTTP2:     true,
		},
		CheckRedirect: limitRedirects,
		Timeout:       timeout,
	}
}

// limitRedirects is an [http.Client] CheckRedirect func allowing at most [MaxRedirects].
func limitRedirects(req *http.Request, via []*http.Request) error {
	if len(via) > MaxRedirects {
		return fmt.Errorf("stopped after %d redirects, last was to %s", MaxRedirects, req.URL)
	}

	return nil
}
