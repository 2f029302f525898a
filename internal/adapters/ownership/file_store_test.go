package ownership_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultscope/yctl/internal/adapters/ownership"
	"github.com/vaultscope/yctl/internal/domain"
)

var (
	alice = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	bob   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("initialize sets the owner once", func(t *testing.T) {
		store, err := ownership.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Initialize(ctx, alice))

		owner, err := store.Owner(ctx)
		require.NoError(t, err)
		assert.Equal(t, alice, owner)

		err = store.Initialize(ctx, bob)
		require.ErrorIs(t, err, domain.ErrAlreadyInitialized)
	})

	t.Run("zero address is not a valid initial owner", func(t *testing.T) {
		store, err := ownership.NewFileStore(t.TempDir())
		require.NoError(t, err)

		err = store.Initialize(ctx, common.Address{})
		require.ErrorIs(t, err, domain.ErrInvalidOwner)
	})

	t.Run("require owner gates on the caller", func(t *testing.T) {
		store, err := ownership.NewFileStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Initialize(ctx, alice))

		require.NoError(t, store.RequireOwner(ctx, alice))

		err = store.RequireOwner(ctx, bob)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("uninitialized store rejects everything", func(t *testing.T) {
		store, err := ownership.NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Owner(ctx)
		require.ErrorIs(t, err, domain.ErrNotInitialized)

		err = store.RequireOwner(ctx, alice)
		require.ErrorIs(t, err, domain.ErrNotInitialized)
	})

	t.Run("transfer ownership", func(t *testing.T) {
		store, err := ownership.NewFileStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Initialize(ctx, alice))

		err = store.TransferOwnership(ctx, bob, bob)
		require.ErrorIs(t, err, domain.ErrUnauthorized)

		err = store.TransferOwnership(ctx, alice, common.Address{})
		require.ErrorIs(t, err, domain.ErrInvalidOwner)

		require.NoError(t, store.TransferOwnership(ctx, alice, bob))

		owner, err := store.Owner(ctx)
		require.NoError(t, err)
		assert.Equal(t, bob, owner)

		err = store.RequireOwner(ctx, alice)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("renounce locks all mutations", func(t *testing.T) {
		store, err := ownership.NewFileStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Initialize(ctx, alice))

		require.NoError(t, store.RenounceOwnership(ctx, alice))

		owner, err := store.Owner(ctx)
		require.NoError(t, err)
		assert.Equal(t, common.Address{}, owner)

		// Not even the previous owner passes the gate now
		err = store.RequireOwner(ctx, alice)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("owner record survives reopen", func(t *testing.T) {
		dir := t.TempDir()

		store, err := ownership.NewFileStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Initialize(ctx, alice))
		require.NoError(t, store.TransferOwnership(ctx, alice, bob))

		reopened, err := ownership.NewFileStore(dir)
		require.NoError(t, err)

		owner, err := reopened.Owner(ctx)
		require.NoError(t, err)
		assert.Equal(t, bob, owner)
	})
}
