package chainlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_Repository(t *testing.T) {
	t.Parallel()

	c, err := Build("testdata")
	require.NoError(t, err)
	repo := NewRepository(c, zap.NewNop())
	ctx := context.Background()

	chain, found, err := repo.GetChain(ctx, 56)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "bnb", chain.ShortName)

	_, found, err = repo.GetChain(ctx, 5)
	require.NoError(t, err)
	assert.False(t, found)

	chain, found, err = repo.GetChainByShortName(ctx, "pol")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(137), chain.ChainID)

	all, err := repo.GetAllChains(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func Test_Repository_CancelledContext(t *testing.T) {
	t.Parallel()

	c, err := Build("testdata")
	require.NoError(t, err)
	repo := NewRepository(c, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = repo.GetChain(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)

	_, err = repo.GetAllChains(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
