package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"chainlist-catalog/internal/domain/entity"
	domainService "chainlist-catalog/internal/domain/service"
	"chainlist-catalog/internal/pkg/apperrors"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/websocket"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.RPCChecker = (*Checker)(nil)

const defaultTimeout = 10 * time.Second

// Checker probes RPC endpoints with an eth_chainId call over HTTP(S) or WS(S). An
// endpoint only counts as working when it reports the chain id it is listed under.
type Checker struct {
	client  *fasthttp.Client
	dialer  *websocket.Dialer
	timeout time.Duration
	logger  *zap.Logger
}

// NewChecker creates a new RPC checker. timeout bounds a single probe when the
// caller's context carries no earlier deadline; zero means ten seconds.
func NewChecker(timeout time.Duration, logger *zap.Logger) *Checker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Checker{
		client: &fasthttp.Client{
			ReadTimeout: timeout,
		},
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: timeout,
		},
		timeout: timeout,
		logger:  logger.Named("RPCCheckerAdapter"),
	}
}

// checkPayload asks the node for the chain it serves.
var checkPayload = []byte(`{"jsonrpc":"2.0","method":"eth_chainId","params":[],"id":1}`)

// JSONRPCResponse defines the basic structure for a JSON-RPC response.
type JSONRPCResponse struct {
	ID      any             `json:"id"`
	Jsonrpc string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *JSONRPCError   `json:"error,omitempty"`
}

// JSONRPCError defines the structure for a JSON-RPC error.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// CheckRPC reports whether rpcURL answers eth_chainId with chainID, and how long it took.
func (c *Checker) CheckRPC(
	ctx context.Context,
	rpcURL entity.RPCURL,
	chainID uint64,
) (bool, time.Duration, error) {
	start := time.Now()
	rawURL := rpcURL.String()

	switch entity.ProtocolOf(rpcURL) {
	case entity.ProtocolWS, entity.ProtocolWSS:
		body, err := c.roundTripWS(ctx, rawURL)
		if err != nil {
			return false, time.Since(start), err
		}
		return c.validate(rawURL, chainID, body, time.Since(start))
	case entity.ProtocolHTTP, entity.ProtocolHTTPS:
		body, err := c.roundTripHTTP(ctx, rawURL)
		if err != nil {
			return false, time.Since(start), err
		}
		return c.validate(rawURL, chainID, body, time.Since(start))
	default:
		c.logger.Warn("Skipping check for unsupported protocol", zap.String("url", rawURL))
		return false, 0, fmt.Errorf("%w: unsupported protocol in URL %s", apperrors.ErrInvalidInput, rawURL)
	}
}

// effectiveTimeout is the probe timeout, shortened to the context deadline if that comes first.
func (c *Checker) effectiveTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

func (c *Checker) roundTripHTTP(ctx context.Context, rpcURL string) ([]byte, error) {
	timeout := c.effectiveTimeout(ctx)
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: no time left to check %s", apperrors.ErrTimeout, rpcURL)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rpcURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(checkPayload)

	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		c.logger.Debug("HTTP RPC check request failed", zap.String("url", rpcURL), zap.Error(err))
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("%w: http request to %s timed out after %v", apperrors.ErrTimeout, rpcURL, timeout)
		}
		return nil, fmt.Errorf("%w: http request to %s failed: %v", apperrors.ErrExternalServiceFailure, rpcURL, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Debug("HTTP RPC check returned non-OK status",
			zap.String("url", rpcURL), zap.Int("statusCode", resp.StatusCode()),
		)
		return nil, fmt.Errorf("%w: rpc %s returned non-OK http status: %d",
			apperrors.ErrExternalServiceFailure, rpcURL, resp.StatusCode(),
		)
	}

	// The response is released on return.
	return append([]byte(nil), resp.Body()...), nil
}

func (c *Checker) roundTripWS(ctx context.Context, rpcURL string) ([]byte, error) {
	timeout := c.effectiveTimeout(ctx)
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: no time left to check %s", apperrors.ErrTimeout, rpcURL)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, _, err := c.dialer.DialContext(ctx, rpcURL, nil)
	if err != nil {
		c.logger.Debug("WS dial failed", zap.String("url", rpcURL), zap.Error(err))
		return nil, wsError(ctx, "dial", rpcURL, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(timeout)
	_ = conn.SetWriteDeadline(deadline)
	_ = conn.SetReadDeadline(deadline)

	if err := conn.WriteMessage(websocket.TextMessage, checkPayload); err != nil {
		c.logger.Debug("WS write message failed", zap.String("url", rpcURL), zap.Error(err))
		return nil, wsError(ctx, "write", rpcURL, err)
	}

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.logger.Debug("WS read message failed", zap.String("url", rpcURL), zap.Error(err))
		return nil, wsError(ctx, "read", rpcURL, err)
	}
	return message, nil
}

// wsError classifies a websocket failure as a timeout or an upstream failure.
func wsError(ctx context.Context, op, rpcURL string, err error) error {
	var netErr interface{ Timeout() bool }
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: ws %s %s timed out: %v", apperrors.ErrTimeout, op, rpcURL, err)
	}
	return fmt.Errorf("%w: ws %s %s failed: %v", apperrors.ErrExternalServiceFailure, op, rpcURL, err)
}

// validate checks that body is a successful eth_chainId response naming chainID.
func (c *Checker) validate(
	rpcURL string,
	chainID uint64,
	body []byte,
	latency time.Duration,
) (bool, time.Duration, error) {
	var rpcResp JSONRPCResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		c.logger.Debug("RPC check failed to unmarshal JSON response",
			zap.String("url", rpcURL), zap.ByteString("body", body), zap.Error(err),
		)
		return false, latency, fmt.Errorf("%w: rpc %s returned invalid JSON response: %v",
			apperrors.ErrExternalServiceFailure, rpcURL, err,
		)
	}

	if rpcResp.Error != nil {
		c.logger.Debug("RPC check returned JSON-RPC error",
			zap.String("url", rpcURL),
			zap.Int("errorCode", rpcResp.Error.Code),
			zap.String("errorMessage", rpcResp.Error.Message),
		)
		return false, latency, fmt.Errorf("%w: rpc %s returned json-rpc error: %d %s",
			apperrors.ErrExternalServiceFailure, rpcURL, rpcResp.Error.Code, rpcResp.Error.Message,
		)
	}

	if rpcResp.Jsonrpc != "2.0" || rpcResp.Result == nil {
		c.logger.Debug("RPC check returned invalid JSON-RPC structure",
			zap.String("url", rpcURL), zap.ByteString("body", body),
		)
		return false, latency, fmt.Errorf("%w: rpc %s returned invalid JSON-RPC structure",
			apperrors.ErrExternalServiceFailure, rpcURL,
		)
	}

	var served hexutil.Uint64
	if err := json.Unmarshal(rpcResp.Result, &served); err != nil {
		c.logger.Debug("RPC check returned a malformed chain id",
			zap.String("url", rpcURL), zap.ByteString("result", rpcResp.Result), zap.Error(err),
		)
		return false, latency, fmt.Errorf("%w: rpc %s returned malformed chain id %s: %v",
			apperrors.ErrExternalServiceFailure, rpcURL, rpcResp.Result, err,
		)
	}
	if uint64(served) != chainID {
		c.logger.Debug("RPC serves a different chain",
			zap.String("url", rpcURL), zap.Uint64("want", chainID), zap.Uint64("got", uint64(served)),
		)
		return false, latency, fmt.Errorf("%w: rpc %s serves chain %d, want %d",
			apperrors.ErrConflict, rpcURL, uint64(served), chainID,
		)
	}

	return true, latency, nil
}
