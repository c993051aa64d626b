package domain

import "errors"

var (
	// ErrChainNotFound means the requested chain is not in the catalog.
	ErrChainNotFound = errors.New("chain not found")

	// ErrNoRPCsAvailable means there are no available or working RPCs for the chain.
	ErrNoRPCsAvailable = errors.New("no RPCs available for the chain")

	// ErrCacheFailure means an internal error occurred while interacting with the cache (not a cache miss).
	ErrCacheFailure = errors.New("cache operation failed")
)
