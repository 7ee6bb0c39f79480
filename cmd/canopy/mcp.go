// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/canopy-esg/canopy/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running canopy as an MCP server, exposing ESG scores and dashboard panels to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing canopy's tools:
  - scores:  ESG pillar scores and risk level for a reporting period
  - panel:   Render a dashboard panel as JSON, text, Markdown or HTML
  - options: List the selectable tabs, periods and formats

The server communicates using the Model Context Protocol (MCP) over stdio
transport. Every tool is read-only.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mcpserver.Run(cmd.Context(), Version, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
