// Package cmd implements the command-line interface for mailgate.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide Gmail tools for AI assistants
//   - sweep: Archive messages matching a Gmail query in batches
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
