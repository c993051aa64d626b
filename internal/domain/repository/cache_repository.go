package repository

import (
	"context"
	"time"

	"chainlist-catalog/internal/domain/entity"
)

// CacheRepository defines the interface for caching checked RPC results.
type CacheRepository interface {
	// GetChainCheckedRPCs retrieves the cached list of checked RPC details for a specific chain ID.
	GetChainCheckedRPCs(ctx context.Context, chainID uint64) ([]entity.RPCDetail, bool, error)

	// SetChainCheckedRPCs stores the list of checked RPC details for a specific chain ID in the cache with a specified TTL.
	SetChainCheckedRPCs(ctx context.Context, chainID uint64, rpcs []entity.RPCDetail, ttl time.Duration) error

	// DeleteChainCheckedRPCs drops the cached result for a chain, forcing the next lookup to re-check.
	DeleteChainCheckedRPCs(ctx context.Context, chainID uint64) error
}
