package domain

import "errors"

var (
	// ErrInvalidRequest is returned when verification request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnknownCategory is returned when the product category is not recognized
	ErrUnknownCategory = errors.New("unknown product category")

	// ErrUpstreamUnavailable is returned when the reference data store cannot be reached
	ErrUpstreamUnavailable = errors.New("reference store request failed")

	// ErrTableNotFound is returned when a reference table does not exist upstream
	ErrTableNotFound = errors.New("reference table not found")

	// ErrRateLimited is returned when the upstream rate limit budget is exhausted
	ErrRateLimited = errors.New("rate limit exceeded")
)
