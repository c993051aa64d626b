package chainlist

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chainlist-catalog/internal/domain/entity"
	"chainlist-catalog/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ethereumDoc = `{"name":"Ethereum Mainnet","chain":"ETH","network":"mainnet","rpc":["https://rpc.example"],"faucets":[],"nativeCurrency":{"name":"Ether","symbol":"ETH","decimals":18},"infoURL":"https://ethereum.org","shortName":"eth","chainId":1,"networkId":1,"explorers":[]}`

func Test_DecodeBytes_Ethereum(t *testing.T) {
	t.Parallel()

	chain, err := DecodeBytes([]byte(ethereumDoc))
	require.NoError(t, err)

	want := entity.Chain{
		Name:    "Ethereum Mainnet",
		Chain:   "ETH",
		Network: entity.NetworkMainnet,
		RPC:     []entity.RPCURL{"https://rpc.example"},
		Faucets: []string{},
		NativeCurrency: entity.NativeCurrency{
			Name:     "Ether",
			Symbol:   "ETH",
			Decimals: 18,
		},
		InfoURL:   "https://ethereum.org",
		ShortName: "eth",
		ChainID:   1,
		NetworkID: 1,
		Explorers: []entity.Explorer{},
	}
	assert.Equal(t, want, chain)
}

func Test_DecodeBytes_OptionalFields(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "eip155-1.json"))
	require.NoError(t, err)

	chain, err := DecodeBytes(data)
	require.NoError(t, err)

	require.NotNil(t, chain.Icon)
	assert.Equal(t, "ethereum", *chain.Icon)
	require.NotNil(t, chain.Slip44)
	assert.Equal(t, uint64(60), *chain.Slip44)
	require.NotNil(t, chain.Ens)
	assert.Equal(t, "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e", chain.Ens.Registry)
	assert.Len(t, chain.RPC, 6)
	assert.Equal(t, []entity.Explorer{
		{Name: "etherscan", URL: "https://etherscan.io", Standard: "EIP3091"},
		{Name: "blockscout", URL: "https://eth.blockscout.com", Standard: "EIP3091"},
	}, chain.Explorers)
}

func Test_DecodeBytes_ExplorersDefaultToEmpty(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(ethereumDoc, `,"explorers":[]`, "", 1)
	require.NotContains(t, doc, "explorers")

	chain, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	assert.NotNil(t, chain.Explorers)
	assert.Empty(t, chain.Explorers)
	assert.Nil(t, chain.Icon)
	assert.Nil(t, chain.Slip44)
	assert.Nil(t, chain.Ens)
}

func Test_DecodeBytes_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		wantErr string
	}{
		{
			name:    "empty input",
			give:    "",
			wantErr: "deserializing json: ",
		},
		{
			name:    "syntax error",
			give:    `{"name":`,
			wantErr: "deserializing json: ",
		},
		{
			name:    "not an object",
			give:    `[1,2,3]`,
			wantErr: "deserializing json: ",
		},
		{
			name:    "trailing garbage",
			give:    ethereumDoc + `{}`,
			wantErr: "deserializing json: ",
		},
		{
			name:    "missing chainId",
			give:    strings.Replace(ethereumDoc, `"chainId":1,`, "", 1),
			wantErr: "deserializing json: missing field `chainId`",
		},
		{
			name:    "null name",
			give:    strings.Replace(ethereumDoc, `"name":"Ethereum Mainnet"`, `"name":null`, 1),
			wantErr: "deserializing json: missing field `name`",
		},
		{
			name:    "missing rpc",
			give:    strings.Replace(ethereumDoc, `"rpc":["https://rpc.example"],`, "", 1),
			wantErr: "deserializing json: missing field `rpc`",
		},
		{
			name:    "missing decimals",
			give:    strings.Replace(ethereumDoc, `,"decimals":18`, "", 1),
			wantErr: "deserializing json: missing field `nativeCurrency.decimals`",
		},
		{
			name:    "wrong type for chainId",
			give:    strings.Replace(ethereumDoc, `"chainId":1`, `"chainId":"1"`, 1),
			wantErr: "deserializing json: ",
		},
		{
			name:    "negative networkId",
			give:    strings.Replace(ethereumDoc, `"networkId":1`, `"networkId":-1`, 1),
			wantErr: "deserializing json: ",
		},
		{
			name:    "infoURL spelled infoUrl",
			give:    strings.Replace(ethereumDoc, `"infoURL"`, `"infoUrl"`, 1),
			wantErr: "deserializing json: missing field `infoURL`",
		},
		{
			name:    "chainId in upper case",
			give:    strings.Replace(ethereumDoc, `"chainId"`, `"CHAINID"`, 1),
			wantErr: "deserializing json: missing field `chainId`",
		},
		{
			name:    "symbol in wrong case",
			give:    strings.Replace(ethereumDoc, `"symbol"`, `"Symbol"`, 1),
			wantErr: "deserializing json: missing field `nativeCurrency.symbol`",
		},
		{
			name:    "duplicate chainId",
			give:    strings.Replace(ethereumDoc, `"chainId":1`, `"chainId":1,"chainId":2`, 1),
			wantErr: "duplicate",
		},
		{
			name:    "invalid utf-8",
			give:    strings.Replace(ethereumDoc, "Ethereum Mainnet", "Ether\xffeum Mainnet", 1),
			wantErr: "deserializing json: ",
		},
		{
			name:    "explorer without url",
			give:    strings.Replace(ethereumDoc, `"explorers":[]`, `"explorers":[{"name":"x","standard":"none"}]`, 1),
			wantErr: "deserializing json: missing field `explorers[0].url`",
		},
		{
			name:    "ens without registry",
			give:    strings.Replace(ethereumDoc, `"explorers":[]`, `"explorers":[],"ens":{}`, 1),
			wantErr: "deserializing json: missing field `ens.registry`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeBytes([]byte(tt.give))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrDeserialization)
			assert.Contains(t, err.Error(), tt.wantErr)

			kind, ok := apperrors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.KindDeserialization, kind)
		})
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func Test_Decode_ReaderFailureIsFileError(t *testing.T) {
	t.Parallel()

	_, err := Decode(io.MultiReader(strings.NewReader(`{"name":`), brokenReader{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFile)
	assert.EqualError(t, err, "reading file: disk on fire")
}

func Test_DecodeFile(t *testing.T) {
	t.Parallel()

	chain, err := DecodeFile("testdata", 137)
	require.NoError(t, err)
	assert.Equal(t, uint64(137), chain.ChainID)
	assert.Equal(t, "pol", chain.ShortName)
}

func Test_DecodeFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eip155-5.json"), []byte("{not json"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "eip155-6.json"), 0o700))

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeFile(dir, 4)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory in place of file", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeFile(dir, 6)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrFile)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeFile(dir, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDeserialization)
	})
}

func Test_Encode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, id := range []uint64{1, 56, 137} {
		chain, err := DecodeFile("testdata", id)
		require.NoError(t, err)

		data, err := Encode(chain)
		require.NoError(t, err)

		again, err := DecodeBytes(data)
		require.NoError(t, err)
		assert.Equal(t, chain, again, "chain %d", id)
	}
}

func Test_Encode_WireKeys(t *testing.T) {
	t.Parallel()

	chain, err := DecodeBytes([]byte(ethereumDoc))
	require.NoError(t, err)

	data, err := Encode(chain)
	require.NoError(t, err)

	assert.JSONEq(t, ethereumDoc, string(data))
}
