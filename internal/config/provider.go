package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/domain/config"
)

const ProjectFile = "yctl.toml"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// Load .env before reading env-backed settings, matching direnv-style
	// workflows. Missing file is fine.
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".yctl"),
		RPCURL:         v.GetString("rpc_url"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
	}

	project, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ProjectFile, err)
	}
	cfg.Project = project

	if cfg.RPCURL == "" && project != nil {
		cfg.RPCURL = project.RPC.URL
	}

	// Caller resolution order: flag/env via viper, then project file.
	callerStr := v.GetString("caller")
	if callerStr == "" && project != nil {
		callerStr = project.Caller
	}
	if callerStr != "" {
		caller, err := domain.ParseAddress(callerStr)
		if err != nil {
			return nil, fmt.Errorf("invalid caller %q: %w", callerStr, err)
		}
		cfg.Caller = caller
	}

	return cfg, nil
}

// loadProjectConfig parses yctl.toml if present.
func loadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	path := filepath.Join(projectRoot, ProjectFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var project config.ProjectConfig
	if err := toml.Unmarshal(data, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// FindProjectRoot walks up from the current directory to find yctl.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFile)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a yctl project (%s not found)", ProjectFile)
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".yctl"))

	v.SetEnvPrefix("YCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "2m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Config file is optional
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}
