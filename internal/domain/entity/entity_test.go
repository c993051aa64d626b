package entity

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Chain_Clone(t *testing.T) {
	t.Parallel()

	icon := "ethereum"
	slip44 := uint64(60)
	orig := Chain{
		Name:      "Ethereum Mainnet",
		Icon:      &icon,
		RPC:       []RPCURL{"https://a.example"},
		Faucets:   []string{},
		Slip44:    &slip44,
		Ens:       &Ens{Registry: "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"},
		Explorers: []Explorer{{Name: "etherscan", URL: "https://etherscan.io", Standard: "EIP3091"}},
		ChainID:   1,
	}

	c := orig.Clone()
	require.Equal(t, orig, c)

	*c.Icon = "changed"
	c.RPC[0] = "https://b.example"
	*c.Slip44 = 1
	c.Ens.Registry = ""
	c.Explorers[0].Name = "changed"

	assert.Equal(t, "ethereum", *orig.Icon)
	assert.Equal(t, RPCURL("https://a.example"), orig.RPC[0])
	assert.Equal(t, uint64(60), *orig.Slip44)
	assert.Equal(t, "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e", orig.Ens.Registry)
	assert.Equal(t, "etherscan", orig.Explorers[0].Name)

	assert.NotNil(t, c.Faucets, "empty slices stay non-nil")
	assert.Nil(t, Chain{}.Clone().RPC)
}

func Test_Ens_Address(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		registry string
		want     common.Address
		ok       bool
	}{
		{
			name:     "checksummed",
			registry: "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e",
			want:     common.HexToAddress("0x00000000000c2e074ec69a0dfb2997ba6c7d2e1e"),
			ok:       true,
		},
		{name: "too short", registry: "0x1234"},
		{name: "not hex", registry: "registry.eth"},
		{name: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Ens{Registry: tt.registry}.Address()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ProtocolOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  RPCURL
		want Protocol
	}{
		{url: "http://localhost:8545", want: ProtocolHTTP},
		{url: "HTTPS://rpc.example", want: ProtocolHTTPS},
		{url: "ws://rpc.example", want: ProtocolWS},
		{url: "wss://rpc.example/ws", want: ProtocolWSS},
		{url: "ipc:///tmp/geth.ipc", want: ProtocolUnknown},
		{url: "rpc.example", want: ProtocolUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ProtocolOf(tt.url), tt.url)
	}
}

func Test_NewRPCURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "https", raw: "https://cloudflare-eth.com"},
		{name: "wss", raw: "wss://mainnet.example/ws"},
		{name: "empty", raw: "  ", wantErr: "cannot be empty"},
		{name: "relative", raw: "rpc.example", wantErr: "invalid rpc url format"},
		{name: "ipc", raw: "ipc:///tmp/geth.ipc", wantErr: "unsupported scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewRPCURL(tt.raw)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func Test_RPCURL_IsTemplated(t *testing.T) {
	t.Parallel()

	assert.True(t, RPCURL("https://mainnet.infura.io/v3/${INFURA_API_KEY}").IsTemplated())
	assert.True(t, RPCURL("wss://${HOST}/ws").IsTemplated())
	assert.False(t, RPCURL("https://cloudflare-eth.com").IsTemplated())
	assert.False(t, RPCURL("https://rpc.example/${broken").IsTemplated())
	assert.False(t, RPCURL("https://rpc.example/}${").IsTemplated())
}

func Test_CloneRPCDetails(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CloneRPCDetails(nil))

	working := true
	orig := []RPCDetail{{URL: "https://a.example", IsWorking: &working}, {URL: "wss://b.example"}}
	c := CloneRPCDetails(orig)
	require.Equal(t, orig, c)

	*c[0].IsWorking = false
	assert.True(t, *orig[0].IsWorking)
	assert.Nil(t, c[1].IsWorking)
}
