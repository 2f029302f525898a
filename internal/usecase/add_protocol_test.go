package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

func TestAddProtocol(t *testing.T) {
	ctx := context.Background()

	t.Run("owner adds protocols in order", func(t *testing.T) {
		repo := newMemRepo()
		sink := &captureSink{}
		add := usecase.NewAddProtocol(runtimeConfig(ownerAddr), repo, newMemOwners(ownerAddr), sink, usecase.NopProgress{})

		result, err := add.Run(ctx, usecase.AddProtocolParams{Protocol: protocol1})
		require.NoError(t, err)
		assert.True(t, result.Added)
		assert.Equal(t, uint64(1), result.Count)

		result, err = add.Run(ctx, usecase.AddProtocolParams{Protocol: protocol2})
		require.NoError(t, err)
		assert.True(t, result.Added)
		assert.Equal(t, uint64(2), result.Count)

		protocols, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []common.Address{protocol1, protocol2}, protocols)

		require.Len(t, sink.events, 2)
		added, ok := sink.events[0].(*domain.ProtocolAddedEvent)
		require.True(t, ok)
		assert.Equal(t, protocol1, added.Protocol)
		assert.Equal(t, ownerAddr, added.Owner)
	})

	t.Run("duplicate add is an idempotent no-op", func(t *testing.T) {
		repo := newMemRepo(protocol1, protocol2)
		sink := &captureSink{}
		add := usecase.NewAddProtocol(runtimeConfig(ownerAddr), repo, newMemOwners(ownerAddr), sink, usecase.NopProgress{})

		result, err := add.Run(ctx, usecase.AddProtocolParams{Protocol: protocol1})
		require.NoError(t, err)
		assert.False(t, result.Added)
		assert.Equal(t, uint64(2), result.Count)

		// No event on the no-op path
		assert.Empty(t, sink.events)

		protocols, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []common.Address{protocol1, protocol2}, protocols)
	})

	t.Run("non-owner is rejected and state is unchanged", func(t *testing.T) {
		repo := newMemRepo(protocol1, protocol2)
		sink := &captureSink{}
		add := usecase.NewAddProtocol(runtimeConfig(strangerAddr), repo, newMemOwners(ownerAddr), sink, usecase.NopProgress{})

		_, err := add.Run(ctx, usecase.AddProtocolParams{Protocol: protocol3})
		require.ErrorIs(t, err, domain.ErrUnauthorized)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), count)
		assert.Empty(t, sink.events)
	})

	t.Run("mutations fail after ownership is renounced", func(t *testing.T) {
		owners := newMemOwners(ownerAddr)
		require.NoError(t, owners.RenounceOwnership(ctx, ownerAddr))

		repo := newMemRepo()
		add := usecase.NewAddProtocol(runtimeConfig(ownerAddr), repo, owners, &captureSink{}, usecase.NopProgress{})

		_, err := add.Run(ctx, usecase.AddProtocolParams{Protocol: protocol1})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
