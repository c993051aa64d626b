package chainlist

import (
	"context"

	"chainlist-catalog/internal/domain/entity"
	domainRepo "chainlist-catalog/internal/domain/repository"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.ChainRepository = (*Repository)(nil)

// Repository implements ChainRepository on top of a built Catalog.
type Repository struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewRepository creates a new chain repository serving the given catalog.
func NewRepository(catalog *Catalog, logger *zap.Logger) *Repository {
	return &Repository{
		catalog: catalog,
		logger:  logger.Named("ChainlistStorage"),
	}
}

// GetChain looks a chain up by id. An unknown id is reported through found, not err.
func (r *Repository) GetChain(ctx context.Context, chainID uint64) (entity.Chain, bool, error) {
	if err := ctx.Err(); err != nil {
		return entity.Chain{}, false, err
	}

	chain, found := r.catalog.Get(chainID)
	if !found {
		r.logger.Debug("Chain not in catalog", zap.Uint64("chainId", chainID))
	}
	return chain, found, nil
}

// GetAllChains returns every chain of the catalog ordered by chain id.
func (r *Repository) GetAllChains(ctx context.Context) ([]entity.Chain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chains := r.catalog.All()
	r.logger.Debug("Listing catalog chains", zap.Int("count", len(chains)))
	return chains, nil
}

// GetChainByShortName looks a chain up by its short name.
func (r *Repository) GetChainByShortName(ctx context.Context, shortName string) (entity.Chain, bool, error) {
	if err := ctx.Err(); err != nil {
		return entity.Chain{}, false, err
	}
	chain, found := r.catalog.GetByShortName(shortName)
	return chain, found, nil
}
