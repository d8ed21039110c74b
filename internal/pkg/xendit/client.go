package xendit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/config"
)

// Client wraps the Xendit HTTP API. Calls authenticate with the secret key as
// basic-auth username and an empty password.
type Client struct {
	baseURL     string
	secretKey   string
	environment string
	httpClient  *http.Client
}

// NewClient creates a new Xendit client. The configured timeout bounds every
// outbound call so a hung gateway cannot block a payroll run indefinitely.
func NewClient(cfg config.XenditConfig) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		secretKey:   cfg.SecretKey,
		environment: cfg.Environment,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

// APIError represents a Xendit API error
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("xendit API error [%d] %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

// IsSandbox returns true if running in sandbox mode
func (c *Client) IsSandbox() bool {
	return c.environment == "sandbox"
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (int, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.secretKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}
