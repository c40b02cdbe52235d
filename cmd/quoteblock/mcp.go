// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/edsblocks/quoteblock/internal/tool"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the quote block tools over MCP (stdio)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := settings(cmd)
		if err != nil {
			return err
		}

		slog.SetDefault(logger)

		server := mcp.NewServer(&mcp.Implementation{Name: "quoteblock", Version: version}, nil)
		tool.Register(server, cfg, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("serving MCP over stdio")
		return server.Run(ctx, &mcp.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
