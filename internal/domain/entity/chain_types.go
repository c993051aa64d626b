package entity

import "github.com/ethereum/go-ethereum/common"

// NetworkType is the free-form network label of a chain, such as "mainnet" or "testnet".
type NetworkType string

// NetworkMainnet labels production networks.
const NetworkMainnet NetworkType = "mainnet"

// Chain represents the metadata of one EVM network as listed in ethereum-lists/chains.
type Chain struct {
	Name           string
	Chain          string
	Network        NetworkType
	Icon           *string
	RPC            []RPCURL
	Faucets        []string
	NativeCurrency NativeCurrency
	InfoURL        string
	ShortName      string
	ChainID        uint64
	NetworkID      uint64
	Slip44         *uint64
	Ens            *Ens
	Explorers      []Explorer
}

// NativeCurrency defines the native currency details of a chain.
type NativeCurrency struct {
	Name     string
	Symbol   string
	Decimals int64
}

// Explorer defines details about a block explorer for a chain.
type Explorer struct {
	Name     string
	URL      string
	Standard string
}

// Ens defines ENS registry details.
type Ens struct {
	Registry string
}

// Address returns the registry as an EVM address. ok is false when the registry
// is not a 20-byte hex string.
func (e Ens) Address() (addr common.Address, ok bool) {
	if !common.IsHexAddress(e.Registry) {
		return common.Address{}, false
	}
	return common.HexToAddress(e.Registry), true
}

// Clone returns a deep copy of the chain. Slices and optional fields of the copy
// share no memory with c.
func (c Chain) Clone() Chain {
	out := c
	out.RPC = cloneSlice(c.RPC)
	out.Faucets = cloneSlice(c.Faucets)
	out.Explorers = cloneSlice(c.Explorers)
	if c.Icon != nil {
		icon := *c.Icon
		out.Icon = &icon
	}
	if c.Slip44 != nil {
		slip44 := *c.Slip44
		out.Slip44 = &slip44
	}
	if c.Ens != nil {
		ens := *c.Ens
		out.Ens = &ens
	}
	return out
}

// cloneSlice copies s, keeping an empty non-nil slice non-nil.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

