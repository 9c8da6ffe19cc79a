package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the admin API client. The base URL is always supplied by the
// caller so the same binary can point at any deployment.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithToken sets the admin bearer token.
func WithToken(token string) Option {
	return func(client *Client) {
		client.token = token
	}
}

// NewClient creates a new admin API client.
//
// Parameters:
//   - baseURL: The API base URL (e.g., "http://localhost:8080")
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the admin API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d detail=%s", e.StatusCode, e.Detail)
}

// Health checks service liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/api/health", nil, nil)
}

// GetStatistics retrieves the overview snapshot.
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	if err := c.doRequest(ctx, http.MethodGet, "/api/admin/statistics", nil, &stats); err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	return &stats, nil
}

// ListUsers retrieves a page of the user directory.
func (c *Client) ListUsers(ctx context.Context, params ListUsersParams) (*UserList, error) {
	q := url.Values{}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Skip > 0 {
		q.Set("skip", strconv.Itoa(params.Skip))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}

	var users UserList
	if err := c.doRequest(ctx, http.MethodGet, withQuery("/api/admin/users", q), nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &users, nil
}

// GetUserDetail retrieves a user with their payment history.
func (c *Client) GetUserDetail(ctx context.Context, telegramID int64) (*UserDetail, error) {
	path := fmt.Sprintf("/api/admin/users/%d", telegramID)

	var detail UserDetail
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &detail); err != nil {
		return nil, fmt.Errorf("get user detail: %w", err)
	}
	return &detail, nil
}

// GrantSubscription manually activates a subscription on a user.
func (c *Client) GrantSubscription(ctx context.Context, telegramID int64, planType string, amountPaid float64) (*User, error) {
	path := fmt.Sprintf("/api/admin/users/%d/subscription", telegramID)
	body := map[string]any{
		"plan_type":   planType,
		"amount_paid": amountPaid,
	}

	var user User
	if err := c.doRequest(ctx, http.MethodPut, path, body, &user); err != nil {
		return nil, fmt.Errorf("grant subscription: %w", err)
	}
	return &user, nil
}

// DeleteUser removes a user and their payment history.
func (c *Client) DeleteUser(ctx context.Context, telegramID int64) error {
	path := fmt.Sprintf("/api/admin/users/%d", telegramID)

	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ListPayments retrieves a page of payment submissions.
func (c *Client) ListPayments(ctx context.Context, params ListPaymentsParams) (*PaymentList, error) {
	q := url.Values{}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Skip > 0 {
		q.Set("skip", strconv.Itoa(params.Skip))
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}

	var payments PaymentList
	if err := c.doRequest(ctx, http.MethodGet, withQuery("/api/admin/payments", q), nil, &payments); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return &payments, nil
}

// ApprovePayment verifies a pending payment and activates its subscription.
func (c *Client) ApprovePayment(ctx context.Context, paymentID string) (*ActionResult, error) {
	path := fmt.Sprintf("/api/admin/payments/%s/approve", url.PathEscape(paymentID))

	var result ActionResult
	if err := c.doRequest(ctx, http.MethodPut, path, nil, &result); err != nil {
		return nil, fmt.Errorf("approve payment: %w", err)
	}
	return &result, nil
}

// RejectPayment rejects a pending payment with a reason.
func (c *Client) RejectPayment(ctx context.Context, paymentID, reason string) (*ActionResult, error) {
	path := fmt.Sprintf("/api/admin/payments/%s/reject", url.PathEscape(paymentID))
	if reason != "" {
		q := url.Values{}
		q.Set("reason", reason)
		path = withQuery(path, q)
	}

	var result ActionResult
	if err := c.doRequest(ctx, http.MethodPut, path, nil, &result); err != nil {
		return nil, fmt.Errorf("reject payment: %w", err)
	}
	return &result, nil
}

// SendBroadcast queues a broadcast to the selected audience.
func (c *Client) SendBroadcast(ctx context.Context, req BroadcastRequest) (*BroadcastReceipt, error) {
	var receipt BroadcastReceipt
	if err := c.doRequest(ctx, http.MethodPost, "/api/admin/broadcast", req, &receipt); err != nil {
		return nil, fmt.Errorf("send broadcast: %w", err)
	}
	return &receipt, nil
}

// ListBroadcasts retrieves broadcast history, newest first.
func (c *Client) ListBroadcasts(ctx context.Context, limit int) (*BroadcastList, error) {
	path := "/api/admin/broadcasts"
	if limit > 0 {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(limit))
		path = withQuery(path, q)
	}

	var broadcasts BroadcastList
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &broadcasts); err != nil {
		return nil, fmt.Errorf("list broadcasts: %w", err)
	}
	return &broadcasts, nil
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// doRequest performs an HTTP request and decodes the response.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(respBody, &detail); err == nil && detail.Detail != "" {
			apiErr.Detail = detail.Detail
		} else {
			apiErr.Detail = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
