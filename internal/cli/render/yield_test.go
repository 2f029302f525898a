package render_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/vaultscope/yctl/internal/cli/render"
)

func TestFormatEther(t *testing.T) {
	cases := []struct {
		wei  *uint256.Int
		want string
	}{
		{uint256.NewInt(0), "0"},
		{uint256.NewInt(5_000_000_000_000_000), "0.005"},
		{uint256.NewInt(8_000_000_000_000_000), "0.008"},
		{uint256.NewInt(1), "0.000000000000000001"},
		{uint256.NewInt(1_000_000_000_000_000_000), "1"},
		{uint256.NewInt(1_500_000_000_000_000_000), "1.5"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, render.FormatEther(tc.wei), "wei %s", tc.wei.Dec())
	}
}
