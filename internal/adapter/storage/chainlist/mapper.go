package chainlist

import (
	dto "chainlist-catalog/internal/adapter/storage/chainlist/dto"
	"chainlist-catalog/internal/domain/entity"
)

// toDomainChain converts a validated raw DTO into its domain entity counterpart.
// Slices of the result are never nil.
func toDomainChain(raw *dto.ChainRaw) entity.Chain {
	rpcs := make([]entity.RPCURL, len(raw.RPC))
	for i, rpcStr := range raw.RPC {
		rpcs[i] = entity.RPCURL(rpcStr)
	}

	explorers := make([]entity.Explorer, len(raw.Explorers))
	for i, eRaw := range raw.Explorers {
		explorers[i] = entity.Explorer{
			Name:     *eRaw.Name,
			URL:      *eRaw.URL,
			Standard: *eRaw.Standard,
		}
	}

	var ens *entity.Ens
	if raw.Ens != nil {
		ens = &entity.Ens{Registry: *raw.Ens.Registry}
	}

	return entity.Chain{
		Name:    *raw.Name,
		Chain:   *raw.Chain,
		Network: entity.NetworkType(*raw.Network),
		Icon:    copyPtr(raw.Icon),
		RPC:     rpcs,
		Faucets: append(make([]string, 0, len(raw.Faucets)), raw.Faucets...),
		NativeCurrency: entity.NativeCurrency{
			Name:     *raw.NativeCurrency.Name,
			Symbol:   *raw.NativeCurrency.Symbol,
			Decimals: *raw.NativeCurrency.Decimals,
		},
		InfoURL:   *raw.InfoURL,
		ShortName: *raw.ShortName,
		ChainID:   *raw.ChainID,
		NetworkID: *raw.NetworkID,
		Slip44:    copyPtr(raw.Slip44),
		Ens:       ens,
		Explorers: explorers,
	}
}

// toRawChain converts a domain chain back to its wire representation.
func toRawChain(c entity.Chain) *dto.ChainRaw {
	rpcs := make([]string, len(c.RPC))
	for i, u := range c.RPC {
		rpcs[i] = u.String()
	}

	explorers := make([]*dto.ExplorerRaw, len(c.Explorers))
	for i, e := range c.Explorers {
		explorers[i] = &dto.ExplorerRaw{
			Name:     ptr(e.Name),
			URL:      ptr(e.URL),
			Standard: ptr(e.Standard),
		}
	}

	var ens *dto.EnsRaw
	if c.Ens != nil {
		ens = &dto.EnsRaw{Registry: ptr(c.Ens.Registry)}
	}

	faucets := c.Faucets
	if faucets == nil {
		faucets = []string{}
	}

	return &dto.ChainRaw{
		Name:    ptr(c.Name),
		Chain:   ptr(c.Chain),
		Network: ptr(string(c.Network)),
		Icon:    copyPtr(c.Icon),
		RPC:     rpcs,
		Faucets: faucets,
		NativeCurrency: &dto.CurrencyRaw{
			Name:     ptr(c.NativeCurrency.Name),
			Symbol:   ptr(c.NativeCurrency.Symbol),
			Decimals: ptr(c.NativeCurrency.Decimals),
		},
		InfoURL:   ptr(c.InfoURL),
		ShortName: ptr(c.ShortName),
		ChainID:   ptr(c.ChainID),
		NetworkID: ptr(c.NetworkID),
		Slip44:    copyPtr(c.Slip44),
		Ens:       ens,
		Explorers: explorers,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
