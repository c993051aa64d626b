package port

import (
	"context"

	"chainlist-catalog/internal/domain/entity"
)

// ChainService defines the interface for the read operations over the chain catalog.
type ChainService interface {
	// GetChain returns one chain, or domain.ErrChainNotFound.
	GetChain(ctx context.Context, chainID uint64) (entity.Chain, error)

	// GetChainByShortName returns the chain with the given short name, or domain.ErrChainNotFound.
	GetChainByShortName(ctx context.Context, shortName string) (entity.Chain, error)

	// ListChains returns every chain ordered by chain id.
	ListChains(ctx context.Context) ([]entity.Chain, error)

	// GetCheckedRPCsForChain probes the chain's RPC endpoints, serving a cached result
	// unless refresh is set.
	GetCheckedRPCsForChain(ctx context.Context, chainID uint64, refresh bool) ([]entity.RPCDetail, error)
}
