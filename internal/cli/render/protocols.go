package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

// Color styles for table output
var (
	addressStyle       = color.New(color.FgWhite)
	ownerStyle         = color.New(color.FgCyan)
	renouncedStyle     = color.New(color.Faint)
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
)

// ProtocolsRenderer renders the registry contents as a formatted table
type ProtocolsRenderer struct {
	out io.Writer
}

// NewProtocolsRenderer creates a new protocols renderer
func NewProtocolsRenderer(out io.Writer) *ProtocolsRenderer {
	return &ProtocolsRenderer{out: out}
}

// RenderProtocolList renders the registry snapshot
func (r *ProtocolsRenderer) RenderProtocolList(result *usecase.ListProtocolsResult) error {
	if domain.IsZeroAddress(result.Owner) {
		fmt.Fprintf(r.out, "Owner: %s\n", renouncedStyle.Sprint("(renounced)"))
	} else {
		fmt.Fprintf(r.out, "Owner: %s\n", ownerStyle.Sprint(result.Owner.Hex()))
	}

	if result.Count == 0 {
		fmt.Fprintln(r.out, "No protocols tracked")
		return nil
	}

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("Tracked protocols (%d)", result.Count))

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Protocol"})

	for i, protocol := range result.Protocols {
		t.AppendRow(table.Row{i, addressStyle.Sprint(protocol.Hex())})
	}

	t.Render()
	return nil
}
