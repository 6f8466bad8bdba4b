package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-version"
)

// minimumServerVersion is the oldest self-hosted Jira whose REST API
// still looks like the v3 API this tool speaks. Cloud deployments
// report a synthetic four-digit version and are always current.
var minimumServerVersion = version.Must(version.NewVersion("9.0.0"))

// ServerInfo describes the Jira deployment behind the base URL.
type ServerInfo struct {
	BaseURL        string `json:"baseUrl"`
	Version        string `json:"version"`
	DeploymentType string `json:"deploymentType"`
	ServerTitle    string `json:"serverTitle"`
}

// ServerInfo fetches deployment details. It doubles as a cheap
// connectivity and credentials probe for the ping command.
func (c *Client) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	resp, err := c.get(ctx, c.baseURL+"/rest/api/3/serverInfo")
	if err != nil {
		return nil, fmt.Errorf("serverInfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("serverInfo request", resp)
	}

	var info ServerInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode serverInfo: %w", err)
	}
	return &info, nil
}

// VersionWarning returns a caution when the deployment looks too old
// for the v3 REST API, or the empty string when it looks fine.
func (info *ServerInfo) VersionWarning() string {
	if strings.EqualFold(info.DeploymentType, "Cloud") {
		return ""
	}
	v, err := version.NewVersion(info.Version)
	if err != nil {
		return fmt.Sprintf("cannot parse server version %q", info.Version)
	}
	if v.LessThan(minimumServerVersion) {
		return fmt.Sprintf(
			"Jira %s is older than %s; the v3 REST API may be unavailable",
			info.Version, minimumServerVersion,
		)
	}
	return ""
}
