package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// ErrUserNotFound indicates the directory has no user for the given
// principal.
var ErrUserNotFound = errors.New("user not found")

const defaultScope = "https://graph.microsoft.com/.default"

// Client talks to the Microsoft Graph API. It covers the two collaborator
// surfaces the reconciler depends on: the directory (users and mailbox
// settings) and the calendar store (events).
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a Graph client authenticating with the client-credentials
// grant against the tenant's token endpoint. The returned client reuses and
// refreshes its token automatically.
func NewClient(ctx context.Context, cfg Config) *Client {
	creds := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.TenantID),
		Scopes:       []string{defaultScope},
	}

	httpClient := creds.Client(ctx)
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	httpClient.Timeout = time.Duration(timeout) * time.Second

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// NewClientWithHTTP builds a client around an existing HTTP client and base
// URL. Used by tests to point at an httptest server.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// get issues a GET against an absolute or base-relative URL and decodes the
// JSON response into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	if !strings.HasPrefix(url, "http") {
		url = c.baseURL + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode graph response: %w", err)
	}
	return nil
}

// send issues a request with a JSON body and optionally decodes the
// response into out when the status is 2xx with content.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode graph request: %w", err)
		}
		payload = strings.NewReader(string(data))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode graph response: %w", err)
		}
	}
	return nil
}

func statusError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("graph: %s %s returned %d: %s",
		resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, strings.TrimSpace(string(data)))
}
