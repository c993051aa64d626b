package chainlist_dto

import "fmt"

// MissingFieldError reports a required key that was absent or null.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field `%s`", e.Field)
}

// Validate checks that every required key of the document was present.
func (c *ChainRaw) Validate() error {
	required := []struct {
		field   string
		present bool
	}{
		{"name", c.Name != nil},
		{"chain", c.Chain != nil},
		{"network", c.Network != nil},
		{"rpc", c.RPC != nil},
		{"faucets", c.Faucets != nil},
		{"nativeCurrency", c.NativeCurrency != nil},
		{"infoURL", c.InfoURL != nil},
		{"shortName", c.ShortName != nil},
		{"chainId", c.ChainID != nil},
		{"networkId", c.NetworkID != nil},
	}
	for _, r := range required {
		if !r.present {
			return &MissingFieldError{Field: r.field}
		}
	}

	if err := c.NativeCurrency.validate(); err != nil {
		return err
	}
	if c.Ens != nil && c.Ens.Registry == nil {
		return &MissingFieldError{Field: "ens.registry"}
	}
	for i, e := range c.Explorers {
		if err := e.validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (c *CurrencyRaw) validate() error {
	switch {
	case c.Name == nil:
		return &MissingFieldError{Field: "nativeCurrency.name"}
	case c.Symbol == nil:
		return &MissingFieldError{Field: "nativeCurrency.symbol"}
	case c.Decimals == nil:
		return &MissingFieldError{Field: "nativeCurrency.decimals"}
	}
	return nil
}

func (e *ExplorerRaw) validate(i int) error {
	switch {
	case e == nil:
		return fmt.Errorf("explorers[%d]: invalid type: null, expected an object", i)
	case e.Name == nil:
		return &MissingFieldError{Field: fmt.Sprintf("explorers[%d].name", i)}
	case e.URL == nil:
		return &MissingFieldError{Field: fmt.Sprintf("explorers[%d].url", i)}
	case e.Standard == nil:
		return &MissingFieldError{Field: fmt.Sprintf("explorers[%d].standard", i)}
	}
	return nil
}
