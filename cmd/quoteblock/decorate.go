// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edsblocks/quoteblock/internal/decorate"
)

var decorateCmd = &cobra.Command{
	Use:   "decorate [file]",
	Short: "Rebuild every quote block in an HTML document",
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

		d := decorate.FromConfig(cfg, logger)
		out, reports, err := d.DecorateHTML(cmd.Context(), markup)
		if err != nil {
			return err
		}
		logger.Debug("decorated document", "blocks", len(reports))

		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(decorateCmd)
}
