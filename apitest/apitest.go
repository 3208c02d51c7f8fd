// Package apitest provides test helpers for routers built with mvc.
package apitest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// Client wraps an httptest.Server for convenient end-to-end testing.
type Client struct {
	Server *httptest.Server
}

// NewClient creates a test client from any handler, usually an *mvc.Router.
func NewClient(t testing.TB, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &Client{Server: srv}
}

// Response holds a fully read response.
type Response struct {
	Status  int
	Headers http.Header
	Body    string
}

// Get sends a GET request.
func (c *Client) Get(t testing.TB, path string) *Response {
	t.Helper()
	return c.Do(t, http.MethodGet, path, "")
}

// Post sends a POST request with a form-encoded body.
func (c *Client) Post(t testing.TB, path, body string) *Response {
	t.Helper()
	return c.Do(t, http.MethodPost, path, body)
}

// Do sends a request with the given method and optional body.
func (c *Client) Do(t testing.TB, method, path, body string) *Response {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, c.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("apitest: create request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return c.Send(t, req)
}

// Send executes a prepared request. Relative URLs are resolved against the
// test server.
func (c *Client) Send(t testing.TB, req *http.Request) *Response {
	t.Helper()

	if req.URL.Host == "" {
		u, err := url.Parse(c.Server.URL)
		if err != nil {
			t.Fatalf("apitest: parse server url: %v", err)
		}
		req.URL.Scheme = u.Scheme
		req.URL.Host = u.Host
		req.RequestURI = ""
	}

	resp, err := c.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("apitest: execute request: %v", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			t.Errorf("apitest: close body: %v", closeErr)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("apitest: read body: %v", err)
	}

	return &Response{
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Body:    string(b),
	}
}
