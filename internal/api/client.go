package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultEndpoint is the GraphQL endpoint used when no config overrides it.
	DefaultEndpoint = "http://localhost:5000/graphql"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	requestIDHeader = "X-Request-ID"
)

// Client is the todo GraphQL API client.
type Client struct {
	httpClient   *http.Client
	endpoint     string
	newRequestID func() string
}

// NewClient creates a new client that posts queries to endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		endpoint:     endpoint,
		newRequestID: uuid.NewString,
	}
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetTimeout changes the timeout of the underlying HTTP client.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// Endpoint returns the GraphQL endpoint the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// operation is a named GraphQL document.
type operation struct {
	name  string
	query string
}

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []ErrorEntry    `json:"errors"`
}

// do posts a GraphQL operation and decodes the "data" member into result.
func (c *Client) do(ctx context.Context, op operation, variables map[string]interface{}, result interface{}) error {
	jsonBody, err := json.Marshal(graphQLRequest{
		Query:         op.query,
		OperationName: op.name,
		Variables:     variables,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := c.newRequestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", requestID, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
			RequestID:  requestID,
		}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return &GraphQLError{
			Operation: op.name,
			Errors:    envelope.Errors,
			RequestID: requestID,
		}
	}

	if result != nil {
		if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
			return fmt.Errorf("empty data in %s response", op.name)
		}
		if err := json.Unmarshal(envelope.Data, result); err != nil {
			return fmt.Errorf("failed to decode %s data: %w", op.name, err)
		}
	}

	return nil
}
