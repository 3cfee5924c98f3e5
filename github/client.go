// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package github is a typed client for the reactions resource of the GitHub
// REST API. It covers reactions on issues and on issue comments, addressed
// either by owner/name or by numeric repository id, and leaves everything
// else (rate limiting, retries, caching) to the caller and the server.
package github

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-version"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var jsonHeader = http.Header{"Content-Type": []string{"application/json"}}

// Client represents a client to talk to one GitHub API endpoint.
type Client struct {
	url         string
	accessToken string
	userAgent   string
	client      *http.Client
	debug       bool

	versionLock   sync.Mutex
	versionKnown  bool
	serverVersion *version.Version
}

// ClientOption configures a Client during construction.
type ClientOption func(*Client) error

// NewClient initializes and returns an API client. The url is the API root,
// e.g. "https://api.github.com" or "https://ghe.example.com/api/v3".
func NewClient(url string, options ...ClientOption) (*Client, error) {
	if strings.TrimSpace(url) == "" {
		return nil, newInvalidArgumentErrorf("endpoint url is required")
	}
	client := &Client{
		url:       strings.TrimSuffix(url, "/"),
		userAgent: "gitea-github-client",
		client:    &http.Client{},
	}
	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// SetToken sets the access token sent with every request.
func SetToken(token string) ClientOption {
	return func(client *Client) error {
		client.accessToken = token
		return nil
	}
}

// SetHTTPClient replaces the default http.Client.
func SetHTTPClient(httpClient *http.Client) ClientOption {
	return func(client *Client) error {
		if httpClient == nil {
			return newInvalidArgumentErrorf("http client is required")
		}
		client.client = httpClient
		return nil
	}
}

// SetUserAgent overrides the User-Agent header.
func SetUserAgent(userAgent string) ClientOption {
	return func(client *Client) error {
		client.userAgent = userAgent
		return nil
	}
}

// SetDebugMode logs every request line to the standard logger.
func SetDebugMode() ClientOption {
	return func(client *Client) error {
		client.debug = true
		return nil
	}
}

// Response represents the API response, with the pagination cursors from the
// Link header already parsed. A page value of 0 means "no such page".
type Response struct {
	*http.Response

	FirstPage int
	PrevPage  int
	NextPage  int
	LastPage  int
}

var linkPageRE = regexp.MustCompile(`[?&]page=(\d+)[^>]*>;\s*rel="(\w+)"`)

func newResponse(r *http.Response) *Response {
	resp := &Response{Response: r}
	for _, link := range r.Header.Values("Link") {
		for _, segment := range strings.Split(link, ",") {
			m := linkPageRE.FindStringSubmatch(segment)
			if m == nil {
				continue
			}
			page, _ := strconv.Atoi(m[1])
			switch m[2] {
			case "first":
				resp.FirstPage = page
			case "prev":
				resp.PrevPage = page
			case "next":
				resp.NextPage = page
			case "last":
				resp.LastPage = page
			}
		}
	}
	return resp
}

func (c *Client) doRequest(ctx context.Context, method, path string, header http.Header, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "token "+c.accessToken)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	if c.debug {
		log.Printf("%s %s", method, path)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	return newResponse(resp), nil
}

// getResponse does a request and returns the response body, converting any
// status outside the 2xx range into an *APIError.
func (c *Client) getResponse(ctx context.Context, method, path string, header http.Header, body io.Reader) ([]byte, *Response, error) {
	resp, err := c.doRequest(ctx, method, path, header, body)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, err
	}
	if resp.StatusCode/100 != 2 {
		return data, resp, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
			URL:        resp.Request.URL.String(),
		}
	}
	return data, resp, nil
}

// getParsedResponse is getResponse plus JSON decoding into obj.
func (c *Client) getParsedResponse(ctx context.Context, method, path string, header http.Header, body io.Reader, obj any) (*Response, error) {
	data, resp, err := c.getResponse(ctx, method, path, header, body)
	if err != nil {
		return resp, err
	}
	return resp, json.Unmarshal(data, obj)
}

// errorMessage pulls the "message" field out of an API error body, falling
// back to the raw body.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(data))
}

// ServerVersion returns the version of a GitHub Enterprise endpoint. It
// returns the empty string for github.com, which reports no version.
func (c *Client) ServerVersion(ctx context.Context) (string, *Response, error) {
	var meta struct {
		InstalledVersion string `json:"installed_version"`
	}
	resp, err := c.getParsedResponse(ctx, "GET", "/meta", nil, nil, &meta)
	if err != nil {
		return "", resp, err
	}
	return meta.InstalledVersion, resp, nil
}

// CheckServerVersionConstraint validates that the connected server satisfies
// the given version constraint, e.g. ">=3.7.0". An endpoint that reports no
// version (github.com) satisfies every constraint. The server version is
// fetched once and cached on the client.
func (c *Client) CheckServerVersionConstraint(ctx context.Context, constraint string) error {
	check, err := version.NewConstraint(constraint)
	if err != nil {
		return newInvalidArgumentErrorf("invalid version constraint %q: %v", constraint, err)
	}
	v, err := c.loadServerVersion(ctx)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	if !check.Check(v) {
		return fmt.Errorf("server version %s does not satisfy constraint %q", v.Original(), constraint)
	}
	return nil
}

func (c *Client) loadServerVersion(ctx context.Context) (*version.Version, error) {
	c.versionLock.Lock()
	defer c.versionLock.Unlock()
	if c.versionKnown {
		return c.serverVersion, nil
	}
	raw, _, err := c.ServerVersion(ctx)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		v, err := version.NewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("malformed server version %q: %w", raw, err)
		}
		c.serverVersion = v
	}
	c.versionKnown = true
	return c.serverVersion, nil
}
