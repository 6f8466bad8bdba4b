package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lderezinski/wkreport/internal/api"
)

// issueFields is the subset of Jira issue fields the report cares
// about.
type issueFields struct {
	Summary string `json:"summary"`
	Status  struct {
		Name string `json:"name"`
	} `json:"status"`
	Resolution struct {
		Name string `json:"name"`
	} `json:"resolution"`
	ResolutionDate string `json:"resolutiondate"`
	Parent         struct {
		Key string `json:"key"`
	} `json:"parent"`
}

// SearchByFilter fetches the issues matched by the provided filter.
// Only the filter's ID is consulted; the definition is re-fetched so
// that a stale searchUrl (say, from a local cache) cannot be used.
func (c *Client) SearchByFilter(ctx context.Context, filter *api.Filter) ([]api.Issue, error) {
	if filter == nil {
		return nil, errors.New("filter is required")
	}
	if strings.TrimSpace(filter.ID) == "" {
		return nil, fmt.Errorf("filter %q is missing a valid id", filter.Name)
	}

	details, err := c.FilterByID(ctx, filter.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch filter %s: %w", filter.ID, err)
	}

	searchURL := strings.TrimSpace(details.SearchURL)
	if searchURL == "" {
		return nil, fmt.Errorf("filter %q is missing searchUrl", details.Name)
	}

	return c.fetchIssuesFromSearchURL(ctx, searchURL)
}

func (c *Client) fetchIssuesFromSearchURL(ctx context.Context, searchURL string) ([]api.Issue, error) {
	resp, err := c.get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("execute searchUrl request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("searchUrl request", resp)
	}

	var payload struct {
		Issues []struct {
			ID string `json:"id"`
		} `json:"issues"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode searchUrl response: %w", err)
	}

	if len(payload.Issues) == 0 {
		return nil, nil
	}

	issues := make([]api.Issue, 0, len(payload.Issues))
	for _, ref := range payload.Issues {
		issueID := strings.TrimSpace(ref.ID)
		if issueID == "" {
			continue
		}
		issue, err := c.fetchIssueDetails(ctx, issueID)
		if err != nil {
			return nil, fmt.Errorf("fetch issue %s: %w", issueID, err)
		}
		issues = append(issues, issue)
	}

	return issues, nil
}

func (c *Client) fetchIssueDetails(ctx context.Context, issueID string) (api.Issue, error) {
	endpoint := fmt.Sprintf(
		"%s/rest/api/3/issue/%s?fields=summary,status,resolution,resolutiondate,parent",
		c.baseURL, issueID,
	)
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return api.Issue{}, fmt.Errorf("execute issue request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return api.Issue{}, statusError("issue "+issueID+" request", resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return api.Issue{}, fmt.Errorf("read issue %s: %w", issueID, err)
	}
	debugResponse("issue "+issueID, body)

	var payload struct {
		Key    string      `json:"key"`
		Fields issueFields `json:"fields"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return api.Issue{}, fmt.Errorf("decode issue %s: %w", issueID, err)
	}

	issue := issueFromFields(payload.Key, payload.Fields)
	if issue.Key != "" {
		issue.URL = c.BrowseURL(issue.Key)
	}
	return issue, nil
}

func issueFromFields(key string, fields issueFields) api.Issue {
	return api.Issue{
		Key:      strings.TrimSpace(key),
		Summary:  strings.TrimSpace(fields.Summary),
		Status:   strings.TrimSpace(fields.Status.Name),
		Parent:   strings.TrimSpace(fields.Parent.Key),
		Resolved: formatResolved(fields.ResolutionDate, fields.Resolution.Name),
	}
}

// formatResolved condenses Jira's resolution fields into one cell.
// Jira instances are inconsistent about the resolutiondate layout, so
// several are tried; an unparseable date falls back to the resolution
// name, then to the raw value.
func formatResolved(resolutionDate, resolutionName string) string {
	dateValue := strings.TrimSpace(resolutionDate)
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000-0700",
		"2006-01-02T15:04:05-0700",
		"2006-01-02 15:04:05-0700",
		"2006-01-02 15:04:05",
	}

	if dateValue != "" {
		for _, layout := range layouts {
			if parsed, err := time.Parse(layout, dateValue); err == nil {
				return parsed.Format("2006-01-02 15:04")
			}
		}
	}

	if name := strings.TrimSpace(resolutionName); name != "" {
		return name
	}

	return dateValue
}
