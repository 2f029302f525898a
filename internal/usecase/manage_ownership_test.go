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

func TestManageOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("show returns the current owner", func(t *testing.T) {
		uc := usecase.NewManageOwnership(runtimeConfig(ownerAddr), newMemOwners(ownerAddr), usecase.NopProgress{})

		result, err := uc.Run(ctx, usecase.ManageOwnershipParams{Operation: "show"})
		require.NoError(t, err)
		assert.Equal(t, ownerAddr, result.Owner)
	})

	t.Run("transfer moves ownership", func(t *testing.T) {
		owners := newMemOwners(ownerAddr)
		uc := usecase.NewManageOwnership(runtimeConfig(ownerAddr), owners, usecase.NopProgress{})

		result, err := uc.Run(ctx, usecase.ManageOwnershipParams{
			Operation: "transfer",
			NewOwner:  strangerAddr,
		})
		require.NoError(t, err)
		assert.Equal(t, ownerAddr, result.PreviousOwner)
		assert.Equal(t, strangerAddr, result.Owner)

		owner, err := owners.Owner(ctx)
		require.NoError(t, err)
		assert.Equal(t, strangerAddr, owner)
	})

	t.Run("transfer by non-owner fails", func(t *testing.T) {
		uc := usecase.NewManageOwnership(runtimeConfig(strangerAddr), newMemOwners(ownerAddr), usecase.NopProgress{})

		_, err := uc.Run(ctx, usecase.ManageOwnershipParams{
			Operation: "transfer",
			NewOwner:  strangerAddr,
		})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("transfer to the zero address fails", func(t *testing.T) {
		uc := usecase.NewManageOwnership(runtimeConfig(ownerAddr), newMemOwners(ownerAddr), usecase.NopProgress{})

		_, err := uc.Run(ctx, usecase.ManageOwnershipParams{
			Operation: "transfer",
			NewOwner:  common.Address{},
		})
		require.ErrorIs(t, err, domain.ErrInvalidOwner)
	})

	t.Run("renounce clears the owner", func(t *testing.T) {
		owners := newMemOwners(ownerAddr)
		uc := usecase.NewManageOwnership(runtimeConfig(ownerAddr), owners, usecase.NopProgress{})

		result, err := uc.Run(ctx, usecase.ManageOwnershipParams{Operation: "renounce"})
		require.NoError(t, err)
		assert.Equal(t, common.Address{}, result.Owner)

		err = owners.RequireOwner(ctx, ownerAddr)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown operation fails", func(t *testing.T) {
		uc := usecase.NewManageOwnership(runtimeConfig(ownerAddr), newMemOwners(ownerAddr), usecase.NopProgress{})

		_, err := uc.Run(ctx, usecase.ManageOwnershipParams{Operation: "steal"})
		require.Error(t, err)
	})
}
