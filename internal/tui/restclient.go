package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studypilot/server/studypilot/resources"
)

// timeout for API requests
const requestTimeout = 30 * time.Second

// manages HTTP requests to the StudyPilot REST API
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// creates a new REST client configured from the environment
func NewClient() *Client {
	endpoint := os.Getenv("STUDYPILOT_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &Client{
		endpoint: endpoint,
		token:    os.Getenv("STUDYPILOT_TOKEN"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	url := fmt.Sprintf("%s/api/v1%s", c.endpoint, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// fetches the user's saved resource library
func (c *Client) ListResources(ctx context.Context) ([]resources.Resource, error) {
	var resp listResponse
	if err := c.get(ctx, "/resources", &resp); err != nil {
		return nil, err
	}

	return resp.Resources, nil
}

// fetches a single saved resource
func (c *Client) GetResource(ctx context.Context, id string) (*resources.Resource, error) {
	var resp resourceResponse
	if err := c.get(ctx, "/resources/"+id, &resp); err != nil {
		return nil, err
	}

	return resp.Resource, nil
}

// returns a tea.Cmd that loads the resource library
func (c *Client) ListResourcesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := c.ListResources(ctx)
		if err != nil {
			return APIErrorMsg{err: err}
		}

		return LibraryLoadedMsg{resources: list}
	}
}

// returns a tea.Cmd that loads one resource
func (c *Client) GetResourceCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resource, err := c.GetResource(ctx, id)
		if err != nil {
			return APIErrorMsg{err: err}
		}

		return ResourceLoadedMsg{resource: resource}
	}
}

// REST API response types

type listResponse struct {
	Resources []resources.Resource `json:"resources"`
}

type resourceResponse struct {
	Resource *resources.Resource `json:"resource"`
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
