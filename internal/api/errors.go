package api

import (
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx HTTP response from the GraphQL endpoint.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsBadRequest returns true for 400 responses, which GraphQL servers use for invalid documents.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == 400
}

// IsRateLimited returns true if the error is a 429 Too Many Requests error.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// ErrorEntry is one element of a GraphQL "errors" array.
type ErrorEntry struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// GraphQLError is returned when the server answers 2xx but reports errors.
type GraphQLError struct {
	Operation string
	Errors    []ErrorEntry
	RequestID string
}

// Error implements the error interface.
func (e *GraphQLError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, entry := range e.Errors {
		msgs = append(msgs, entry.Message)
	}
	return fmt.Sprintf("%s: %s", e.Operation, strings.Join(msgs, "; "))
}

// IsAPIError checks if an error is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsGraphQLError checks if an error is a GraphQLError and returns it.
func IsGraphQLError(err error) (*GraphQLError, bool) {
	var gqlErr *GraphQLError
	ok := errors.As(err, &gqlErr)
	return gqlErr, ok
}

// RequestID extracts the request id carried by a client error, if any.
func RequestID(err error) string {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.RequestID
	}
	if gqlErr, ok := IsGraphQLError(err); ok {
		return gqlErr.RequestID
	}
	return ""
}
