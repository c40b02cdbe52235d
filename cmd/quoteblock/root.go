// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/edsblocks/quoteblock/internal/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "quoteblock",
	Short: "Normalize and rebuild authored quote blocks",
	Long: `quoteblock reads quote blocks as produced by the supported authoring tools,
normalizes them into quote/author records and rebuilds their presentation markup,
carrying the editor metadata of every authored row over to the rebuilt item.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("block-class", "", "Class marking quote blocks in the input")
	flags.String("style-prefix", "", "Prefix of the style token among block classes")
	flags.String("author-content", "", "Byline handling: text or html")
	flags.String("empty-items", "", "Empty item handling: retain or drop")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
}

// settings resolves the config file, then applies explicitly set flags on top.
func settings(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	overrides := map[string]*string{
		"block-class":    &cfg.BlockClass,
		"style-prefix":   &cfg.StylePrefix,
		"author-content": &cfg.AuthorContent,
		"empty-items":    &cfg.EmptyItems,
	}
	for name, target := range overrides {
		if cmd.Flags().Changed(name) {
			*target, _ = cmd.Flags().GetString(name)
		}
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	return cfg, newLogger(cmd.ErrOrStderr(), cfg.LogLevel), nil
}

// newLogger keeps logs on stderr so stdout carries only command output.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "quoteblock",
	})
	return slog.New(handler)
}

// readInput reads the file named by the first argument, or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
