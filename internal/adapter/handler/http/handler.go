package http

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"chainlist-catalog/internal/adapter/stats"
	"chainlist-catalog/internal/adapter/storage/chainlist"
	dto "chainlist-catalog/internal/adapter/storage/chainlist/dto"
	"chainlist-catalog/internal/application/port"
	"chainlist-catalog/internal/domain"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	contentTypeJSON = "application/json"
	contentTypeYAML = "application/yaml"
)

// ChainHandler serves the chain catalog over HTTP.
type ChainHandler struct {
	service port.ChainService
	stats   *stats.Collector
	logger  *zap.Logger
}

// NewChainHandler creates a handler. collector may be nil.
func NewChainHandler(service port.ChainService, collector *stats.Collector, logger *zap.Logger) *ChainHandler {
	return &ChainHandler{
		service: service,
		stats:   collector,
		logger:  logger.Named("ChainHandler"),
	}
}

// GetAllChains lists every chain, or the single chain matching ?shortName=.
func (h *ChainHandler) GetAllChains(ctx *fasthttp.RequestCtx) {
	if shortName := string(ctx.QueryArgs().Peek("shortName")); shortName != "" {
		chain, err := h.service.GetChainByShortName(ctx, shortName)
		switch {
		case err == nil:
			h.recordLookup(chain.ChainID, true)
		case errors.Is(err, domain.ErrChainNotFound) && h.stats != nil:
			h.stats.RecordMiss()
		}
		if err != nil {
			h.writeError(ctx, err)
			return
		}
		h.write(ctx, []*dto.ChainRaw{chainlist.ToWire(chain)})
		return
	}

	chains, err := h.service.ListChains(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	out := make([]*dto.ChainRaw, len(chains))
	for i, c := range chains {
		out[i] = chainlist.ToWire(c)
	}
	h.write(ctx, out)
}

// GetChain serves one chain in the ethereum-lists document format.
func (h *ChainHandler) GetChain(ctx *fasthttp.RequestCtx) {
	chainID, ok := h.chainIDParam(ctx)
	if !ok {
		return
	}

	chain, err := h.service.GetChain(ctx, chainID)
	switch {
	case err == nil:
		h.recordLookup(chainID, true)
	case errors.Is(err, domain.ErrChainNotFound):
		h.recordLookup(chainID, false)
	}
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.write(ctx, chainlist.ToWire(chain))
}

// GetChainRPCs serves the checked RPC endpoints of a chain. ?refresh=true bypasses the cache.
func (h *ChainHandler) GetChainRPCs(ctx *fasthttp.RequestCtx) {
	chainID, ok := h.chainIDParam(ctx)
	if !ok {
		return
	}

	refresh := ctx.QueryArgs().GetBool("refresh")
	rpcs, err := h.service.GetCheckedRPCsForChain(ctx, chainID, refresh)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.write(ctx, rpcs)
}

// GetStats serves lookup counters.
func (h *ChainHandler) GetStats(ctx *fasthttp.RequestCtx) {
	if h.stats == nil {
		ctx.Error("Not Found", fasthttp.StatusNotFound)
		return
	}
	h.write(ctx, h.stats.Snapshot())
}

// recordLookup counts a lookup that reached the catalog. Failures such as a
// cancelled request are not lookups.
func (h *ChainHandler) recordLookup(chainID uint64, found bool) {
	if h.stats != nil {
		h.stats.RecordLookup(chainID, found)
	}
}

func (h *ChainHandler) chainIDParam(ctx *fasthttp.RequestCtx) (uint64, bool) {
	chainIDStr, ok := ctx.UserValue("chainId").(string)
	if !ok {
		h.logger.Error("Failed to get chainId from context")
		ctx.Error("Bad Request: Invalid chainId format", fasthttp.StatusBadRequest)
		return 0, false
	}

	chainID, err := strconv.ParseUint(chainIDStr, 10, 64)
	if err != nil {
		h.logger.Debug("Failed to parse chainId", zap.String("chainIdStr", chainIDStr), zap.Error(err))
		ctx.Error("Bad Request: Invalid chainId", fasthttp.StatusBadRequest)
		return 0, false
	}
	return chainID, true
}

// writeError maps domain errors to HTTP statuses.
func (h *ChainHandler) writeError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, domain.ErrChainNotFound):
		h.logger.Debug("Chain not found", zap.Error(err))
		ctx.Error("Not Found", fasthttp.StatusNotFound)
	case errors.Is(err, domain.ErrNoRPCsAvailable):
		h.logger.Debug("No working RPCs", zap.Error(err))
		ctx.Error("Not Found: no working RPCs", fasthttp.StatusNotFound)
	default:
		h.logger.Error("Request failed", zap.ByteString("uri", ctx.RequestURI()), zap.Error(err))
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
	}
}

// write encodes v as YAML when asked for through ?format=yaml or the Accept header,
// and as JSON otherwise.
func (h *ChainHandler) write(ctx *fasthttp.RequestCtx, v any) {
	var (
		body        []byte
		err         error
		contentType = contentTypeJSON
	)
	if wantsYAML(ctx) {
		contentType = contentTypeYAML
		body, err = yaml.Marshal(v)
	} else {
		body, err = json.Marshal(v)
	}
	if err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType(contentType)
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

func wantsYAML(ctx *fasthttp.RequestCtx) bool {
	if format := string(ctx.QueryArgs().Peek("format")); format != "" {
		return strings.EqualFold(format, "yaml")
	}
	accept := string(ctx.Request.Header.Peek(fasthttp.HeaderAccept))
	return strings.Contains(accept, contentTypeYAML) || strings.Contains(accept, "text/yaml")
}
