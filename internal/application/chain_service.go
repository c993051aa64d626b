package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"chainlist-catalog/internal/application/port"
	"chainlist-catalog/internal/config"
	"chainlist-catalog/internal/domain"
	"chainlist-catalog/internal/domain/entity"
	domainRepo "chainlist-catalog/internal/domain/repository"
	domainService "chainlist-catalog/internal/domain/service"

	"go.uber.org/zap"
)

// Compile-time check to ensure chainService implements ChainService
var _ port.ChainService = (*chainService)(nil)

// chainService implements the port.ChainService interface on top of the chain catalog.
type chainService struct {
	chainRepo  domainRepo.ChainRepository
	cacheRepo  domainRepo.CacheRepository
	rpcChecker domainService.RPCChecker
	logger     *zap.Logger
	cfg        config.CheckerConfig
}

// NewChainService creates a new instance of the chain service.
func NewChainService(
	chainRepo domainRepo.ChainRepository,
	cacheRepo domainRepo.CacheRepository,
	rpcChecker domainService.RPCChecker,
	logger *zap.Logger,
	cfg config.CheckerConfig,
) port.ChainService {
	return &chainService{
		chainRepo:  chainRepo,
		cacheRepo:  cacheRepo,
		rpcChecker: rpcChecker,
		logger:     logger.Named("ChainService"),
		cfg:        cfg,
	}
}

// GetChain returns the chain with the given id.
func (s *chainService) GetChain(ctx context.Context, chainID uint64) (entity.Chain, error) {
	chain, found, err := s.chainRepo.GetChain(ctx, chainID)
	if err != nil {
		return entity.Chain{}, fmt.Errorf("repository.GetChain for chain %d failed: %w", chainID, err)
	}
	if !found {
		return entity.Chain{}, fmt.Errorf("%w: chain with ID %d not found in catalog", domain.ErrChainNotFound, chainID)
	}
	return chain, nil
}

// GetChainByShortName returns the chain with the given short name.
func (s *chainService) GetChainByShortName(ctx context.Context, shortName string) (entity.Chain, error) {
	chain, found, err := s.chainRepo.GetChainByShortName(ctx, shortName)
	if err != nil {
		return entity.Chain{}, fmt.Errorf("repository.GetChainByShortName for %q failed: %w", shortName, err)
	}
	if !found {
		return entity.Chain{}, fmt.Errorf("%w: chain with short name %q not found in catalog",
			domain.ErrChainNotFound, shortName,
		)
	}
	return chain, nil
}

// ListChains returns every chain in the catalog.
func (s *chainService) ListChains(ctx context.Context) ([]entity.Chain, error) {
	chains, err := s.chainRepo.GetAllChains(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.GetAllChains failed: %w", err)
	}
	return chains, nil
}

// GetCheckedRPCsForChain checks the RPC endpoints of one chain. Results are cached per
// chain; refresh drops the cached entry first. ErrNoRPCsAvailable is returned when no
// endpoint answered.
func (s *chainService) GetCheckedRPCsForChain(
	ctx context.Context,
	chainID uint64,
	refresh bool,
) ([]entity.RPCDetail, error) {
	if refresh {
		if err := s.cacheRepo.DeleteChainCheckedRPCs(ctx, chainID); err != nil {
			s.logger.Warn("Failed to drop cached RPC checks", zap.Uint64("chainId", chainID), zap.Error(err))
		}
	} else {
		checkedRPCs, found, err := s.cacheRepo.GetChainCheckedRPCs(ctx, chainID)
		if err != nil {
			s.logger.Warn("Cache error when getting checked RPCs for chain",
				zap.Uint64("chainId", chainID), zap.Error(err),
			)
		}
		if found {
			s.logger.Debug("Cache hit for chain checked RPCs", zap.Uint64("chainId", chainID))
			return requireWorking(chainID, checkedRPCs, "cached result")
		}
	}

	chain, err := s.GetChain(ctx, chainID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Checking chain RPCs",
		zap.Uint64("chainId", chainID), zap.Int("rpcCount", len(chain.RPC)),
	)
	checked := s.checkChainRPCs(ctx, chainID, chain.RPC)

	if err := s.cacheRepo.SetChainCheckedRPCs(ctx, chainID, checked, s.cfg.GetCacheTTL()); err != nil {
		s.logger.Error("Failed to cache checked RPCs for chain",
			zap.Uint64("chainId", chainID), zap.Error(err),
		)
	}

	return requireWorking(chainID, checked, "after check")
}

// requireWorking returns checked unchanged if at least one endpoint works.
func requireWorking(chainID uint64, checked []entity.RPCDetail, source string) ([]entity.RPCDetail, error) {
	for _, d := range checked {
		if d.IsWorking != nil && *d.IsWorking {
			return checked, nil
		}
	}
	return nil, fmt.Errorf("%w: no working RPCs found for chain %d (%s)", domain.ErrNoRPCsAvailable, chainID, source)
}

// checkChainRPCs probes rpcs with a bounded pool of workers. The result keeps the
// order of rpcs. Templated endpoints (API key placeholders) are reported with a nil
// IsWorking since they cannot be called as listed.
func (s *chainService) checkChainRPCs(ctx context.Context, chainID uint64, rpcs []entity.RPCURL) []entity.RPCDetail {
	if len(rpcs) == 0 {
		return nil
	}

	checked := make([]entity.RPCDetail, len(rpcs))

	numWorkers := s.cfg.MaxWorkers
	if numWorkers <= 0 {
		numWorkers = 10
	}
	numWorkers = min(numWorkers, len(rpcs))

	jobs := make(chan int, len(rpcs))
	for i := range rpcs {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				checked[i] = s.checkOne(ctx, chainID, rpcs[i])
			}
		}()
	}
	wg.Wait()

	return checked
}

func (s *chainService) checkOne(ctx context.Context, chainID uint64, rpcURL entity.RPCURL) entity.RPCDetail {
	detail := entity.RPCDetail{URL: rpcURL, Protocol: entity.ProtocolOf(rpcURL)}
	notWorking := false

	if rpcURL.IsTemplated() {
		s.logger.Debug("Skipping templated RPC", zap.Stringer("rpc", rpcURL))
		return detail
	}
	if _, err := entity.NewRPCURL(rpcURL.String()); err != nil {
		s.logger.Debug("Skipping invalid RPC URL", zap.Stringer("rpc", rpcURL), zap.Error(err))
		detail.IsWorking = &notWorking
		return detail
	}
	if ctx.Err() != nil {
		detail.IsWorking = &notWorking
		return detail
	}

	checkCtx, cancel := context.WithTimeout(ctx, s.timeout())
	isWorking, latency, err := s.rpcChecker.CheckRPC(checkCtx, rpcURL, chainID)
	cancel()

	if err != nil {
		s.logger.Debug("RPC check failed", zap.Stringer("rpc", rpcURL), zap.Error(err))
		detail.IsWorking = &notWorking
		return detail
	}

	detail.IsWorking = &isWorking
	if isWorking {
		latencyMs := latency.Milliseconds()
		detail.LatencyMs = &latencyMs
		s.logger.Debug("RPC is working", zap.Stringer("rpc", rpcURL), zap.Duration("latency", latency))
	}
	return detail
}

func (s *chainService) timeout() time.Duration {
	if t := s.cfg.GetTimeout(); t > 0 {
		return t
	}
	return 5 * time.Second
}
