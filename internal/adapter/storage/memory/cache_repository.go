package memory

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"chainlist-catalog/internal/config"
	"chainlist-catalog/internal/domain"
	"chainlist-catalog/internal/domain/entity"
	domainRepo "chainlist-catalog/internal/domain/repository"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.CacheRepository = (*CacheRepository)(nil)

const chainCheckedRPCsKeyPrefix = "chain_checked_rpcs_"

// CacheRepository implements domainRepo.CacheRepository using the go-cache in-memory library.
type CacheRepository struct {
	cache      *cache.Cache
	logger     *zap.Logger
	defaultTTL time.Duration
}

// NewCacheRepository creates a new in-memory cache repository instance.
func NewCacheRepository(cfg config.CacheConfig, logger *zap.Logger) *CacheRepository {
	defaultExpiration := cfg.GetDefaultExpiration()
	cleanupInterval := cfg.GetCleanupInterval()

	c := cache.New(defaultExpiration, cleanupInterval)
	logger.Info(
		"Initialized go-cache for memory storage",
		zap.Duration("defaultExpiration", defaultExpiration),
		zap.Duration("cleanupInterval", cleanupInterval),
	)

	return &CacheRepository{
		cache:      c,
		logger:     logger.Named("MemoryCacheStorage"),
		defaultTTL: defaultExpiration,
	}
}

// GetChainCheckedRPCs retrieves cached checked RPCs for a chain, returning found status.
// The result is a deep copy; callers may modify it freely.
func (r *CacheRepository) GetChainCheckedRPCs(_ context.Context, chainID uint64) ([]entity.RPCDetail, bool, error) {
	key := chainCheckedRPCsKey(chainID)
	x, found := r.cache.Get(key)
	if !found {
		r.logger.Debug("Memory cache miss", zap.String("key", key))
		return nil, false, nil
	}

	rpcs, ok := x.([]entity.RPCDetail)
	if !ok {
		r.logger.Warn("Memory cache data type mismatch for key",
			zap.String("key", key), zap.String("type", fmt.Sprintf("%T", x)),
		)
		return nil, false, fmt.Errorf("%w: key %s holds %T", domain.ErrCacheFailure, key, x)
	}

	r.logger.Debug("Memory cache hit", zap.String("key", key))
	return entity.CloneRPCDetails(rpcs), true, nil
}

// SetChainCheckedRPCs caches the checked RPCs for a specific chain. A non-positive
// ttl falls back to the cache's default expiration.
func (r *CacheRepository) SetChainCheckedRPCs(
	_ context.Context,
	chainID uint64,
	rpcs []entity.RPCDetail,
	ttl time.Duration,
) error {
	key := chainCheckedRPCsKey(chainID)
	if ttl <= 0 {
		ttl = r.defaultTTL
	}
	r.cache.Set(key, entity.CloneRPCDetails(rpcs), ttl)
	r.logger.Debug("Memory cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// DeleteChainCheckedRPCs removes the cached checked RPCs of a chain.
func (r *CacheRepository) DeleteChainCheckedRPCs(_ context.Context, chainID uint64) error {
	key := chainCheckedRPCsKey(chainID)
	r.cache.Delete(key)
	r.logger.Debug("Memory cache delete", zap.String("key", key))
	return nil
}

func chainCheckedRPCsKey(chainID uint64) string {
	return chainCheckedRPCsKeyPrefix + strconv.FormatUint(chainID, 10)
}
