package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"go.followtheprocess.codes/grub/internal/catalog"
	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/test"
)

func TestFetch(t *testing.T) {
	var (
		gotPath      string
		gotUserAgent string
		gotAccept    string
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /bypostcode/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"restaurants": []}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := catalog.New(server.URL+"/bypostcode/", "test", server.Client(), log.New(io.Discard))

	tests := []struct {
		name     string // Name of the test case
		postcode string // Postcode to fetch
		wantPath string // Escaped path the server should see
	}{
		{name: "compact", postcode: "EC4M7RF", wantPath: "/bypostcode/EC4M7RF"},
		{name: "spaced", postcode: "W1A 1AA", wantPath: "/bypostcode/W1A%201AA"},
		{name: "lowercase kept verbatim", postcode: "sw1a1aa", wantPath: "/bypostcode/sw1a1aa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := client.Fetch(t.Context(), tt.postcode)
			test.Ok(t, err)

			test.Equal(t, string(body), `{"restaurants": []}`)
			test.Equal(t, gotPath, tt.wantPath)
			test.Equal(t, gotUserAgent, "go.followtheprocess.codes/grub test")
			test.Equal(t, gotAccept, "application/json")
		})
	}
}

func TestFetchErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status/500/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "boom"}`)
	})
	mux.HandleFunc("GET /status/404/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("GET /empty/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tests := []struct {
		name       string // Name of the test case
		base       string // Base URL to fetch from
		wantStatus int    // Expected status code on the NetworkError
	}{
		{name: "server error", base: server.URL + "/status/500/", wantStatus: http.StatusInternalServerError},
		{name: "not found", base: server.URL + "/status/404/", wantStatus: http.StatusNotFound},
		{name: "empty body", base: server.URL + "/empty/", wantStatus: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := catalog.New(tt.base, "test", server.Client(), log.New(io.Discard))

			body, err := client.Fetch(t.Context(), "EC4M7RF")
			test.Err(t, err)
			test.Equal(t, len(body), 0)

			test.True(t, errors.Is(err, catalog.ErrNetwork))

			var netErr *catalog.NetworkError
			test.True(t, errors.As(err, &netErr))
			test.Equal(t, netErr.StatusCode, tt.wantStatus)
			test.Equal(t, netErr.URL, tt.base+"EC4M7RF")
		})
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL + "/"
	server.Close() // Nothing listening any more

	client := catalog.New(base, "test", catalog.NewHTTPClient(time.Second, time.Second), log.New(io.Discard))

	_, err := client.Fetch(t.Context(), "EC4M7RF")
	test.Err(t, err)
	test.True(t, errors.Is(err, catalog.ErrNetwork))

	var netErr *catalog.NetworkError
	test.True(t, errors.As(err, &netErr))
	test.Equal(t, netErr.StatusCode, 0)
}

func TestFetchCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	client := catalog.New(server.URL+"/", "test", server.Client(), log.New(io.Discard))

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx, "EC4M7RF")
	test.Err(t, err)
	test.True(t, errors.Is(err, catalog.ErrNetwork))
	test.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNetworkErrorMessage(t *testing.T) {
	err := &catalog.NetworkError{
		URL:        "https://example.com/EC4M7RF",
		StatusCode: http.StatusBadGateway,
		Err:        errors.New("unexpected status 502 Bad Gateway"),
	}

	test.Equal(t, err.Error(), "catalog request failed: GET https://example.com/EC4M7RF: 502 Bad Gateway")

	err = &catalog.NetworkError{URL: "https://example.com/EC4M7RF", Err: errors.New("connection refused")}
	test.Equal(t, err.Error(), "catalog request failed: GET https://example.com/EC4M7RF: connection refused")
}

func TestFetchRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /hop/{n}/{postcode}", func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(r.PathValue("n"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if n == 0 {
			fmt.Fprint(w, `{"restaurants": []}`)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/hop/%d/%s", n-1, r.PathValue("postcode")), http.StatusFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	httpClient := catalog.NewHTTPClient(catalog.DefaultTimeout, catalog.DefaultConnectionTimeout)

	tests := []struct {
		name    string // Name of the test case
		hops    int    // Number of redirects before the real response
		wantErr bool   // Whether the fetch should fail
	}{
		{name: "none", hops: 0, wantErr: false},
		{name: "within limit", hops: catalog.MaxRedirects, wantErr: false},
		{name: "too many", hops: catalog.MaxRedirects + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := fmt.Sprintf("%s/hop/%d/", server.URL, tt.hops)
			client := catalog.New(base, "test", httpClient, log.New(io.Discard))

			_, err := client.Fetch(t.Context(), "EC4M7RF")
			test.WantErr(t, err, tt.wantErr)

			if tt.wantErr {
				test.True(t, errors.Is(err, catalog.ErrNetwork))
			}
		})
	}
}
