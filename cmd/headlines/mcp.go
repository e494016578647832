// ABOUTME: MCP server command for headlines CLI
// ABOUTME: Starts stdio-based MCP server for AI agent integration

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/mcp"
	"github.com/harper/headlines/internal/timeutil"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agents",
	Long: `Start the Model Context Protocol (MCP) server on stdio.

Agents can search the news, browse the preset topics, and load the
home topic through structured tools. Logs go to --log-file since
stdout carries the protocol.

The server communicates via JSON-RPC on stdin/stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		searcher, err := newSearcher(cfg)
		if err != nil {
			return err
		}

		logger, closeLog, err := fileLogger(cfg.GetLogFile())
		if err != nil {
			return err
		}
		defer closeLog()

		server := mcp.NewServer(mcp.Options{
			Searcher:  searcher,
			Renderer:  card.NewRenderer(nil, timeutil.LoadZone(cfg.GetTimeZone())),
			Nav:       navPresets(cfg),
			SeedTopic: cfg.GetSeedTopic(),
			Version:   Version,
			Logger:    logger,
		})

		if err := server.ServeStdio(); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
