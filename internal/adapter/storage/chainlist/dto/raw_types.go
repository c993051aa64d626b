package chainlist_dto

// ChainRaw is the wire shape of one ethereum-lists chain file. Required fields are
// pointers so that an absent key can be told apart from a zero value.
type ChainRaw struct {
	Name           *string        `json:"name" yaml:"name"`
	Chain          *string        `json:"chain" yaml:"chain"`
	Network        *string        `json:"network" yaml:"network"`
	Icon           *string        `json:"icon,omitempty" yaml:"icon,omitempty"`
	RPC            []string       `json:"rpc" yaml:"rpc"`
	Faucets        []string       `json:"faucets" yaml:"faucets"`
	NativeCurrency *CurrencyRaw   `json:"nativeCurrency" yaml:"nativeCurrency"`
	InfoURL        *string        `json:"infoURL" yaml:"infoURL"`
	ShortName      *string        `json:"shortName" yaml:"shortName"`
	ChainID        *uint64        `json:"chainId" yaml:"chainId"`
	NetworkID      *uint64        `json:"networkId" yaml:"networkId"`
	Slip44         *uint64        `json:"slip44,omitempty" yaml:"slip44,omitempty"`
	Ens            *EnsRaw        `json:"ens,omitempty" yaml:"ens,omitempty"`
	Explorers      []*ExplorerRaw `json:"explorers" yaml:"explorers"`
}

// CurrencyRaw defines the native currency details of a chain from raw data.
type CurrencyRaw struct {
	Name     *string `json:"name" yaml:"name"`
	Symbol   *string `json:"symbol" yaml:"symbol"`
	Decimals *int64  `json:"decimals" yaml:"decimals"`
}

// ExplorerRaw defines details about a block explorer for a chain from raw data.
type ExplorerRaw struct {
	Name     *string `json:"name" yaml:"name"`
	URL      *string `json:"url" yaml:"url"`
	Standard *string `json:"standard" yaml:"standard"`
}

// EnsRaw defines ENS registry details from raw data.
type EnsRaw struct {
	Registry *string `json:"registry" yaml:"registry"`
}
