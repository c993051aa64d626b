package entity

import (
	"fmt"
	"net/url"
	"strings"
)

// RPCURL represents a typed URL for an RPC endpoint.
type RPCURL string

// NewRPCURL creates a new RPCURL instance after checking that it is a usable
// http(s) or ws(s) URL.
func NewRPCURL(rawURL string) (RPCURL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", fmt.Errorf("rpc url cannot be empty")
	}

	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid rpc url format '%s': %w", rawURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "http", "https", "ws", "wss":
	default:
		return "", fmt.Errorf("rpc url '%s' has unsupported scheme: '%s'", rawURL, scheme)
	}

	return RPCURL(rawURL), nil
}

// IsTemplated reports whether the URL carries a `${VAR}` placeholder, such as
// the API key slots used by ethereum-lists (`${INFURA_API_KEY}`).
func (r RPCURL) IsTemplated() bool {
	open := strings.Index(string(r), "${")
	return open >= 0 && strings.Contains(string(r)[open:], "}")
}

// String returns the string representation of the RPCURL.
func (r RPCURL) String() string {
	return string(r)
}
