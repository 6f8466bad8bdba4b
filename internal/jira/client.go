// Package jira talks to the Jira Cloud REST API: resolving saved
// filters, running their searches, and condensing issues down to the
// handful of fields a status report needs.
package jira

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/lderezinski/wkreport/internal/api"
	"github.com/lderezinski/wkreport/internal/util"
)

// Client communicates with the Jira REST API using basic auth.
type Client struct {
	baseURL    string
	authHeader string
}

var errFilterNotFound = errors.New("filter not found")

// IsNotFound reports whether err means the requested filter does not
// exist, as opposed to a transport or server failure.
func IsNotFound(err error) bool {
	return errors.Is(err, errFilterNotFound)
}

// NewClient creates a Jira API client for the provided credentials.
func NewClient(baseURL, email, apiToken string) (*Client, error) {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		return nil, errors.New("jira base url is required")
	}
	if email == "" {
		return nil, errors.New("jira email is required")
	}
	if apiToken == "" {
		return nil, errors.New("jira api token is required")
	}

	authPayload := base64.StdEncoding.EncodeToString([]byte(email + ":" + apiToken))

	return &Client{
		baseURL:    base,
		authHeader: "Basic " + authPayload,
	}, nil
}

// BaseURL returns the normalized base URL the client talks to. The
// filter store hashes it so cached IDs never leak across instances.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BrowseURL returns the human-facing page for an issue key.
func (c *Client) BrowseURL(key string) string {
	return c.baseURL + "/browse/" + key
}

func (c *Client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := c.newRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return api.HttpClient.Do(req)
}

func debugEnabled() bool {
	return strings.TrimSpace(os.Getenv("WKREPORT_DEBUG")) != ""
}

func debugResponse(what string, body []byte) {
	if !debugEnabled() {
		return
	}
	util.Logf("jira response (%s):\n%s", what, string(body))
}
