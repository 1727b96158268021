package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/castellanops/cumulus/internal/helpers"
)

const (
	defaultAdminAPIBase = "https://outlook.office365.com/adminapi/beta"
	exoScope            = "https://outlook.office365.com/.default"
)

// Client is a thin REST client for the Exchange Online admin API. There
// is no official Go SDK for the cmdlet surface, so enumeration uses the
// OData entity endpoints and mutations go through InvokeCommand, the same
// endpoint the v3 PowerShell module uses.
type Client struct {
	baseURL    string
	tenantID   string
	httpClient *http.Client
	tokenFn    func(ctx context.Context) (string, error)
}

// NewClient builds a client against the production admin endpoint using
// the default credential chain. The tenant ID is derived from the token.
func NewClient(ctx context.Context) (*Client, error) {
	cred, err := helpers.NewCredential()
	if err != nil {
		return nil, err
	}

	tenantID, err := helpers.TenantID(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("failed to determine tenant: %w", err)
	}

	return NewClientWithOptions(defaultAdminAPIBase, tenantID, nil, func(ctx context.Context) (string, error) {
		return helpers.GetToken(ctx, cred, exoScope)
	}), nil
}

// NewClientWithOptions wires an explicit endpoint, HTTP client, and token
// source. Used directly by tests.
func NewClientWithOptions(baseURL, tenantID string, httpClient *http.Client, tokenFn func(ctx context.Context) (string, error)) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		baseURL:    baseURL,
		tenantID:   tenantID,
		httpClient: httpClient,
		tokenFn:    tokenFn,
	}
}

type valuePage struct {
	Value    []json.RawMessage `json:"value"`
	NextLink string            `json:"@odata.nextLink"`
}

// GetAll performs a GET on an entity path and follows @odata.nextLink
// until the listing is exhausted.
func (c *Client) GetAll(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s%s", c.baseURL, c.tenantID, path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var all []json.RawMessage
	for endpoint != "" {
		page, err := c.getPage(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Value...)
		endpoint = page.NextLink
	}
	return all, nil
}

func (c *Client) getPage(ctx context.Context, endpoint string) (*valuePage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("admin API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read admin API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("admin API returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var page valuePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode admin API response: %w", err)
	}
	return &page, nil
}

type cmdletInput struct {
	CmdletName string         `json:"CmdletName"`
	Parameters map[string]any `json:"Parameters"`
}

type invokeRequest struct {
	CmdletInput cmdletInput `json:"CmdletInput"`
}

// InvokeCmdlet runs an Exchange cmdlet through the InvokeCommand endpoint
// and returns the value array of the response.
func (c *Client) InvokeCmdlet(ctx context.Context, cmdlet string, params map[string]any) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s/InvokeCommand", c.baseURL, c.tenantID)

	payload, err := json.Marshal(invokeRequest{CmdletInput: cmdletInput{CmdletName: cmdlet, Parameters: params}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cmdlet %s failed: %w", cmdlet, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cmdlet response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cmdlet %s returned %d: %s", cmdlet, resp.StatusCode, truncate(string(body), 200))
	}

	if len(body) == 0 {
		return nil, nil
	}
	var page valuePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode cmdlet response: %w", err)
	}
	return page.Value, nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	token, err := c.tokenFn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire Exchange token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
