package repository

import (
	"context"

	"chainlist-catalog/internal/domain/entity"
)

// ChainRepository defines the interface for accessing chain data.
type ChainRepository interface {
	// GetChain retrieves a single chain by id. found is false when the id is unknown.
	GetChain(ctx context.Context, chainID uint64) (chain entity.Chain, found bool, err error)

	// GetChainByShortName retrieves a chain by its short name (e.g. "eth"), case-insensitively.
	GetChainByShortName(ctx context.Context, shortName string) (chain entity.Chain, found bool, err error)

	// GetAllChains retrieves the list of all chains from the underlying data source, ordered by chain id.
	GetAllChains(ctx context.Context) ([]entity.Chain, error)
}
