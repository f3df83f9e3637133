package mailtools

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailgate/mailgate/internal/server"
)

// newTestServerContext creates a server context backed by an empty cache
// directory so no on-disk tokens leak into the test.
func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := server.NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(sc.Shutdown)
	return sc
}

// registeredToolNames registers the mail tools on a fresh MCP server and
// returns the set of tool names it exposes.
func registeredToolNames(t *testing.T, readOnly bool) map[string]bool {
	t.Helper()

	s := mcpserver.NewMCPServer("test", "0.0.0")
	sc := newTestServerContext(t)

	if err := RegisterMailTools(s, sc, readOnly); err != nil {
		t.Fatalf("RegisterMailTools() error = %v", err)
	}

	names := make(map[string]bool)
	for _, serverTool := range s.ListTools() {
		names[serverTool.Tool.Name] = true
	}
	return names
}

var readOnlyTools = []string{
	"search_emails",
	"read_email",
	"list_labels",
	"list_attachments",
	"download_attachment",
}

var mutatingTools = []string{
	"modify_labels",
	"batch_modify_labels",
	"archive_email",
	"trash_email",
	"mark_read",
	"mark_unread",
	"create_draft",
	"send_email",
}

func TestRegisterMailTools_ReadOnly(t *testing.T) {
	names := registeredToolNames(t, true)

	for _, tool := range readOnlyTools {
		if !names[tool] {
			t.Errorf("read-only mode should register %q", tool)
		}
	}

	for _, tool := range mutatingTools {
		if names[tool] {
			t.Errorf("read-only mode must not register %q", tool)
		}
	}

	if len(names) != len(readOnlyTools) {
		t.Errorf("read-only mode registered %d tools, want %d", len(names), len(readOnlyTools))
	}
}

func TestRegisterMailTools_WriteEnabled(t *testing.T) {
	names := registeredToolNames(t, false)

	for _, tool := range readOnlyTools {
		if !names[tool] {
			t.Errorf("write mode should register %q", tool)
		}
	}

	for _, tool := range mutatingTools {
		if !names[tool] {
			t.Errorf("write mode should register %q", tool)
		}
	}

	want := len(readOnlyTools) + len(mutatingTools)
	if len(names) != want {
		t.Errorf("write mode registered %d tools, want %d", len(names), want)
	}
}
