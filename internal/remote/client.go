package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"shift-planner-backend/internal/config"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/logger"
)

const dateLayout = "2006-01-02"

// Client talks to the remote store's REST API. It implements all three
// store contracts through the typed accessors below.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a remote store client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.RemoteBaseURL,
		apiKey:     cfg.RemoteAPIKey,
		httpClient: &http.Client{Timeout: cfg.RemoteTimeout()},
		log:        logger.NewWithComponent("remote"),
	}
}

// Shifts returns the shift store backed by this client
func (c *Client) Shifts() ShiftStore { return &shiftClient{c} }

// Absences returns the absence store backed by this client
func (c *Client) Absences() AbsenceStore { return &absenceClient{c} }

// Employees returns the employee store backed by this client
func (c *Client) Employees() EmployeeStore { return &employeeClient{c} }

// do performs one request and decodes a JSON response into out when
// non-nil. A 404 maps to ErrRemoteNotFound; transport failures and other
// non-2xx statuses map to RemoteError so callers can tell "remote is
// down, retry later" from everything else.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.RemoteError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.ErrRemoteNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &apperrors.RemoteError{
			Op:    op,
			Cause: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(msg)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &apperrors.RemoteError{Op: op, Cause: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// createdResponse is the body of every successful create
type createdResponse struct {
	ID string `json:"id"`
}
