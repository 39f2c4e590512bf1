package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cliConfig mirrors calc.toml. Every field has a built-in default so the
// file is entirely optional.
type cliConfig struct {
	Output      outputConfig      `toml:"output"`
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type diagnosticsConfig struct {
	Max int `toml:"max"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Output:      outputConfig{Format: "pretty", Color: "auto"},
		Diagnostics: diagnosticsConfig{Max: 100},
	}
}

// findCalcToml walks up from startDir looking for calc.toml.
func findCalcToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "calc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadCLIConfigOrDefaults merges calc.toml (if any) over the built-in
// defaults. A malformed file degrades to defaults with a warning rather
// than blocking the CLI.
func loadCLIConfigOrDefaults(startDir string) cliConfig {
	cfg := defaultCLIConfig()

	path, ok, err := findCalcToml(startDir)
	if err != nil || !ok {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring %s: %v\n", path, err)
		return defaultCLIConfig()
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "pretty"
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = "auto"
	}
	if cfg.Diagnostics.Max <= 0 {
		cfg.Diagnostics.Max = 100
	}
	return cfg
}

// applyConfigDefaults reseeds the registered flag defaults from the loaded
// config. It runs before Execute parses the command line, so an explicit
// flag still overrides whatever calc.toml says.
func applyConfigDefaults(cfg cliConfig) {
	setFlagDefault(rootCmd.PersistentFlags().Lookup("color"), cfg.Output.Color)
	setFlagDefault(rootCmd.PersistentFlags().Lookup("max-diagnostics"), strconv.Itoa(cfg.Diagnostics.Max))

	// every command with a --format flag honors output.format
	for _, cmd := range []*cobra.Command{tokenizeCmd, parseCmd, versionCmd} {
		setFlagDefault(cmd.Flags().Lookup("format"), cfg.Output.Format)
	}
}

func setFlagDefault(f *pflag.Flag, value string) {
	if f == nil {
		return
	}
	f.DefValue = value
	if err := f.Value.Set(value); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring config default %q for --%s: %v\n", value, f.Name, err)
	}
}
