// ABOUTME: HTTP client for the Terra configurator API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Atlas00000/terra-client/backend/models"
)

// Response types shared with the backend.
type (
	HealthResponse        = models.HealthResponse
	ConfiguratorOptions   = models.ConfiguratorOptions
	ConfigurationInput    = models.ConfigurationInput
	ProductRecommendation = models.ProductRecommendation
	MatrixResponse        = models.MatrixResponse
	InquiryResponse       = models.InquiryResponse
	InquiryKind           = models.InquiryKind
	LeadList              = models.LeadList
)

// Client is the API client for the configurator backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the backend URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend error (%d): %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Options calls GET /api/v1/configurator/options
func (c *Client) Options(ctx context.Context) (*ConfiguratorOptions, error) {
	var out ConfiguratorOptions
	if err := c.do(ctx, http.MethodGet, "/api/v1/configurator/options", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommend calls POST /api/v1/configurator/recommendation
func (c *Client) Recommend(ctx context.Context, in ConfigurationInput) (*ProductRecommendation, error) {
	var out ProductRecommendation
	if err := c.do(ctx, http.MethodPost, "/api/v1/configurator/recommendation", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Matrix calls GET /api/v1/configurator/matrix
func (c *Client) Matrix(ctx context.Context) (*MatrixResponse, error) {
	var out MatrixResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/configurator/matrix", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitRFQ calls POST /api/v1/rfq with a free-form payload
func (c *Client) SubmitRFQ(ctx context.Context, payload any) (*InquiryResponse, error) {
	var out InquiryResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/rfq", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitInquiry calls POST /api/v1/inquiries with a free-form payload
func (c *Client) SubmitInquiry(ctx context.Context, payload any) (*InquiryResponse, error) {
	var out InquiryResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/inquiries", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListLeads calls GET /api/v1/leads with a staff bearer token.
// An empty kind lists every kind; a zero limit uses the server default.
func (c *Client) ListLeads(ctx context.Context, token string, kind InquiryKind, limit int) (*LeadList, error) {
	query := url.Values{}
	if kind != "" {
		query.Set("kind", string(kind))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	var out LeadList
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/leads", query, header, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.doRequest(ctx, method, path, nil, nil, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, header http.Header, body, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("invalid backend URL %q: %w", c.baseURL, err)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("request canceled")
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("request timed out")
		}
		return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg, Details: errResp.Details}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}
