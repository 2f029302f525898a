package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/vaultscope/yctl/internal/domain/config"
	"github.com/vaultscope/yctl/internal/usecase"
)

// SelectorAdapter handles interactive protocol selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectProtocol selects a protocol address from a list
func (s *SelectorAdapter) SelectProtocol(ctx context.Context, protocols []common.Address, prompt string) (common.Address, error) {
	if s.config.NonInteractive {
		return common.Address{}, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(protocols) == 0 {
		return common.Address{}, fmt.Errorf("no protocols provided for selection")
	}

	if len(protocols) == 1 {
		return protocols[0], nil
	}

	options := make([]string, len(protocols))
	for i, protocol := range protocols {
		options[i] = color.New(color.FgWhite, color.Bold).Sprint(protocol.Hex())
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return common.Address{}, fmt.Errorf("selection cancelled: %w", err)
	}

	return protocols[index], nil
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		matches := fuzzy.Find(strings.ToLower(input), []string{strings.ToLower(items[index])})
		return len(matches) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.ProtocolSelector = (*SelectorAdapter)(nil)
