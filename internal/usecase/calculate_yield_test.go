package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

func TestCalculateYield(t *testing.T) {
	ctx := context.Background()

	t.Run("sums per-protocol yields in registry order", func(t *testing.T) {
		repo := newMemRepo(protocol1, protocol2)
		sink := &captureSink{}
		source := &stubSource{yields: map[common.Address]*uint256.Int{
			protocol1: uint256.NewInt(5),
			protocol2: uint256.NewInt(8),
		}}
		calc := usecase.NewCalculateYield(repo, source, sink, usecase.NopProgress{})

		result, err := calc.Run(ctx, usecase.CalculateYieldParams{User: userAddr})
		require.NoError(t, err)
		assert.Equal(t, uint256.NewInt(13), result.Total)
		assert.Equal(t, uint64(2), result.ProtocolCount)

		require.Len(t, result.Breakdown, 2)
		assert.Equal(t, protocol1, result.Breakdown[0].Protocol)
		assert.Equal(t, uint256.NewInt(5), result.Breakdown[0].Yield)
		assert.Equal(t, protocol2, result.Breakdown[1].Protocol)
		assert.Equal(t, uint256.NewInt(8), result.Breakdown[1].Yield)

		require.Len(t, sink.events, 1)
		event, ok := sink.events[0].(*domain.YieldCalculatedEvent)
		require.True(t, ok)
		assert.Equal(t, userAddr, event.User)
		assert.Equal(t, uint256.NewInt(13), event.TotalYield)
		assert.Equal(t, uint64(2), event.ProtocolCount)
	})

	t.Run("empty registry yields zero", func(t *testing.T) {
		calc := usecase.NewCalculateYield(newMemRepo(), &stubSource{}, &captureSink{}, usecase.NopProgress{})

		result, err := calc.Run(ctx, usecase.CalculateYieldParams{User: userAddr})
		require.NoError(t, err)
		assert.True(t, result.Total.IsZero())
		assert.Equal(t, uint64(0), result.ProtocolCount)
		assert.Empty(t, result.Breakdown)
	})

	t.Run("accumulation overflow fails instead of wrapping", func(t *testing.T) {
		maxUint256 := new(uint256.Int).SetAllOne()
		repo := newMemRepo(protocol1, protocol2)
		sink := &captureSink{}
		source := &stubSource{yields: map[common.Address]*uint256.Int{
			protocol1: maxUint256,
			protocol2: uint256.NewInt(1),
		}}
		calc := usecase.NewCalculateYield(repo, source, sink, usecase.NopProgress{})

		_, err := calc.Run(ctx, usecase.CalculateYieldParams{User: userAddr})
		require.ErrorIs(t, err, domain.ErrOverflow)
		assert.Empty(t, sink.events)
	})

	t.Run("lookup failure propagates instead of being skipped", func(t *testing.T) {
		repo := newMemRepo(protocol1, protocol2)
		sink := &captureSink{}
		source := &stubSource{
			yields: map[common.Address]*uint256.Int{protocol1: uint256.NewInt(5)},
			failOn: &protocol2,
		}
		calc := usecase.NewCalculateYield(repo, source, sink, usecase.NopProgress{})

		_, err := calc.Run(ctx, usecase.CalculateYieldParams{User: userAddr})
		require.Error(t, err)

		var lookupErr domain.YieldLookupErr
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, protocol2, lookupErr.Protocol)
		assert.Empty(t, sink.events)
	})
}
