package entity

import "strings"

// Protocol defines the type for RPC protocols.
type Protocol string

// Constants for known protocols.
const (
	ProtocolHTTP    Protocol = "http"
	ProtocolHTTPS   Protocol = "https"
	ProtocolWS      Protocol = "ws"
	ProtocolWSS     Protocol = "wss"
	ProtocolUnknown Protocol = "unknown"
)

// ProtocolOf classifies an RPC URL by its scheme.
func ProtocolOf(u RPCURL) Protocol {
	scheme, _, found := strings.Cut(u.String(), "://")
	if !found {
		return ProtocolUnknown
	}
	switch strings.ToLower(scheme) {
	case "http":
		return ProtocolHTTP
	case "https":
		return ProtocolHTTPS
	case "ws":
		return ProtocolWS
	case "wss":
		return ProtocolWSS
	default:
		return ProtocolUnknown
	}
}

// RPCDetail holds information about a specific RPC endpoint after checking.
type RPCDetail struct {
	URL       RPCURL   `json:"url" yaml:"url"`
	Protocol  Protocol `json:"protocol" yaml:"protocol"`
	IsWorking *bool    `json:"isWorking" yaml:"isWorking"`
	LatencyMs *int64   `json:"latencyMs,omitempty" yaml:"latencyMs,omitempty"`
}

// Clone returns a copy of d that shares no pointers with it.
func (d RPCDetail) Clone() RPCDetail {
	out := d
	if d.IsWorking != nil {
		isWorking := *d.IsWorking
		out.IsWorking = &isWorking
	}
	if d.LatencyMs != nil {
		latencyMs := *d.LatencyMs
		out.LatencyMs = &latencyMs
	}
	return out
}

// CloneRPCDetails deep-copies ds. A nil slice stays nil.
func CloneRPCDetails(ds []RPCDetail) []RPCDetail {
	if ds == nil {
		return nil
	}
	out := make([]RPCDetail, len(ds))
	for i, d := range ds {
		out[i] = d.Clone()
	}
	return out
}
