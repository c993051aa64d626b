package apperrors

import "errors"

// Standard application errors
var (
	// ErrInvalidInput is returned when the input provided by the client is invalid.
	ErrInvalidInput = errors.New("invalid input provided")

	// ErrExternalServiceFailure is returned when an interaction with an external service fails.
	ErrExternalServiceFailure = errors.New("external service interaction failed")

	// ErrTimeout is returned when an operation times out.
	ErrTimeout = errors.New("operation timed out")

	// ErrInternal is returned for unexpected internal system errors.
	ErrInternal = errors.New("internal system error")

	// ErrConflict is returned when a request conflicts with current state of the target resource.
	ErrConflict = errors.New("request conflicts with current state")

	// ErrCatalogBuild is returned when the chain catalog cannot be built from its data directory.
	// The data source is static, so this is fatal for the process.
	ErrCatalogBuild = errors.New("chain catalog build failed")

	// ErrFile matches any *Error of KindFile.
	ErrFile = errors.New("reading file")

	// ErrDeserialization matches any *Error of KindDeserialization.
	ErrDeserialization = errors.New("deserializing json")
)
