package service

import (
	"context"
	"time"

	"chainlist-catalog/internal/domain/entity"
)

// RPCChecker defines the interface for checking RPC endpoint status. An endpoint
// works when it answers for chainID.
type RPCChecker interface {
	CheckRPC(ctx context.Context, rpcURL entity.RPCURL, chainID uint64) (bool, time.Duration, error)
}
