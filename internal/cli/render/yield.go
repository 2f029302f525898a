package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/holiman/uint256"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/vaultscope/yctl/internal/usecase"
)

var totalStyle = color.New(color.Bold, color.FgGreen)

// YieldRenderer renders aggregation results
type YieldRenderer struct {
	out io.Writer
}

// NewYieldRenderer creates a new yield renderer
func NewYieldRenderer(out io.Writer) *YieldRenderer {
	return &YieldRenderer{out: out}
}

// RenderYield renders the aggregated total and, optionally, the
// per-protocol breakdown
func (r *YieldRenderer) RenderYield(result *usecase.CalculateYieldResult, breakdown bool) error {
	fmt.Fprintf(r.out, "User: %s\n", result.User.Hex())

	if breakdown && len(result.Breakdown) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Protocol", "Yield (wei)", "Yield (ETH)"})

		for _, row := range result.Breakdown {
			t.AppendRow(table.Row{
				row.Protocol.Hex(),
				row.Yield.Dec(),
				FormatEther(row.Yield),
			})
		}

		t.Render()
	}

	fmt.Fprintf(r.out, "Total yield across %d protocol(s): %s wei (%s ETH)\n",
		result.ProtocolCount,
		totalStyle.Sprint(result.Total.Dec()),
		totalStyle.Sprint(FormatEther(result.Total)),
	)
	return nil
}

// FormatEther renders a wei amount as a decimal ETH string with trailing
// zeros trimmed.
func FormatEther(wei *uint256.Int) string {
	dec := wei.Dec()
	if len(dec) <= 18 {
		dec = strings.Repeat("0", 19-len(dec)) + dec
	}

	whole := dec[:len(dec)-18]
	frac := strings.TrimRight(dec[len(dec)-18:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}
