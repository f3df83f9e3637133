// Package resources provides MCP resources for exposing account data.
// Resources are read-only data sources that MCP clients can fetch without a
// tool call: the Gmail profile and the label catalog of the default account.
package resources
