// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/edsblocks/quoteblock/internal/decorate"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Print the normalized records of every quote block as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := settings(cmd)
		if err != nil {
			return err
		}
		markup, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		results, err := decorate.FromConfig(cfg, logger).NormalizeHTML(cmd.Context(), markup)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
