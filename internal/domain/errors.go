package domain

import (
	"errors"
	"fmt"
)

const (
	MsgEmptyQuery        = "Please enter at least one skill"
	MsgFetchFailed       = "Failed to fetch recommendations"
	MsgHealthCheckFailed = "Health check failed"
)

var (
	ErrMissingRecommendations = errors.New("response has no recommendations field")
	ErrSessionNotFound        = errors.New("session not found")
)

// ValidationError is raised locally, before anything reaches the network.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NetworkError means the request never produced a usable response: the
// transport failed or the body could not be read or decoded.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the recommender. Detail holds the
// server's "detail" field when it sent one.
type APIError struct {
	StatusCode int
	Detail     string
	Fallback   string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Fallback != "" {
		return e.Fallback
	}
	return MsgFetchFailed
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNetworkError(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

func IsAPIError(err error) bool {
	var target *APIError
	return errors.As(err, &target)
}
