package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig is the resolved per-invocation configuration, built once by
// the config provider and injected everywhere else.
type RuntimeConfig struct {
	// ProjectRoot is the directory containing yctl.toml
	ProjectRoot string

	// DataDir is where registry state lives (<root>/.yctl)
	DataDir string

	// Caller is the identity acting on the registry, resolved from
	// --as / YCTL_CALLER / config
	Caller common.Address

	// RPCURL is the endpoint for the on-chain yield source; empty means the
	// deterministic mock source is used
	RPCURL string

	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Project holds the parsed yctl.toml, if present
	Project *ProjectConfig
}

// ProjectConfig mirrors yctl.toml.
type ProjectConfig struct {
	Caller string `toml:"caller"`
	RPC    struct {
		URL string `toml:"url"`
	} `toml:"rpc"`
}
