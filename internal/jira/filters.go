package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lderezinski/wkreport/internal/api"
	"github.com/lderezinski/wkreport/internal/rank"
)

type filterSearchResponse struct {
	Values     []api.Filter `json:"values"`
	StartAt    int          `json:"startAt"`
	MaxResults int          `json:"maxResults"`
	Total      int          `json:"total"`
	IsLast     bool         `json:"isLast"`
}

// ResolveFilter resolves an identifier, either a filter name or a
// numeric id, to a filter definition. Names win: an all-digit name is
// only treated as an id when no filter has that name.
func (c *Client) ResolveFilter(ctx context.Context, identifier string) (*api.Filter, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, errors.New("empty filter identifier")
	}

	if filter, err := c.filterByName(ctx, identifier); err == nil {
		return filter, nil
	} else if !errors.Is(err, errFilterNotFound) {
		return nil, err
	}

	if _, err := strconv.Atoi(identifier); err == nil {
		return c.FilterByID(ctx, identifier)
	}

	return nil, fmt.Errorf("filter %q: %w", identifier, errFilterNotFound)
}

// ListFilters fetches every filter visible to the current user,
// paging through the search endpoint until Jira says it is done.
func (c *Client) ListFilters(ctx context.Context) ([]api.Filter, error) {
	const pageSize = 100

	filters := make([]api.Filter, 0)
	startAt := 0

	for {
		endpoint := fmt.Sprintf(
			"%s/rest/api/3/filter/search?startAt=%d&maxResults=%d&expand=jql",
			c.baseURL, startAt, pageSize,
		)
		resp, err := c.get(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("filter list request: %w", err)
		}

		payload, err := decodeFilterSearch(resp, "filter list")
		if err != nil {
			return nil, err
		}

		filters = append(filters, payload.Values...)

		if payload.IsLast || len(payload.Values) == 0 {
			break
		}
		startAt += len(payload.Values)
		if payload.Total > 0 && len(filters) >= payload.Total {
			break
		}
	}

	return filters, nil
}

func (c *Client) filterByName(ctx context.Context, name string) (*api.Filter, error) {
	endpoint := fmt.Sprintf(
		"%s/rest/api/3/filter/search?filterName=%s&maxResults=50&expand=jql",
		c.baseURL, url.QueryEscape(name),
	)
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("filter search request: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, errFilterNotFound
	}

	payload, err := decodeFilterSearch(resp, "filter search")
	if err != nil {
		return nil, err
	}
	if len(payload.Values) == 0 {
		return nil, errFilterNotFound
	}

	// Jira's filterName match is a substring search, so rank the hits
	// ourselves and take the best one.
	ranked := rank.Filters(name, payload.Values)
	return &ranked[0], nil
}

// FilterByID fetches one filter's full definition, including the
// searchUrl used to run it.
func (c *Client) FilterByID(ctx context.Context, id string) (*api.Filter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errFilterNotFound
	}

	resp, err := c.get(ctx, c.baseURL+"/rest/api/3/filter/"+id)
	if err != nil {
		return nil, fmt.Errorf("filter request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errFilterNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("filter request", resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("read filter response: %w", err)
	}
	debugResponse("filter "+id, body)

	var filter api.Filter
	if err := json.Unmarshal(body, &filter); err != nil {
		return nil, fmt.Errorf("decode filter: %w", err)
	}
	return &filter, nil
}

func decodeFilterSearch(resp *http.Response, what string) (*filterSearchResponse, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(what, resp)
	}

	var payload filterSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	return &payload, nil
}

func statusError(what string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return fmt.Errorf("%s failed: %s: %s", what, resp.Status, strings.TrimSpace(string(body)))
}
