// Package mailtools registers the Gmail MCP tool surface: search and read,
// label mutation (single and batch), archive/trash/read-state sugar, draft
// creation, sending, attachment listing and download, and label listing.
//
// Handlers validate and coerce request arguments, obtain a per-account
// client from the server context, call one mail access layer operation, and
// render the result as text or indented JSON. Every handler is wrapped with
// the instrumented handler from internal/tools/common so invocations are
// metered and audit-logged. Mutating tools are only registered when the
// server runs with writes enabled.
package mailtools
