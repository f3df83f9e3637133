package cmd

import (
	"context"
	"log/slog"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailgate/mailgate/internal/server"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{
			name:  "debug",
			input: "debug",
			want:  slog.LevelDebug,
		},
		{
			name:  "info",
			input: "info",
			want:  slog.LevelInfo,
		},
		{
			name:  "empty defaults to info",
			input: "",
			want:  slog.LevelInfo,
		},
		{
			name:  "warn",
			input: "warn",
			want:  slog.LevelWarn,
		},
		{
			name:  "warning alias",
			input: "warning",
			want:  slog.LevelWarn,
		},
		{
			name:  "error",
			input: "error",
			want:  slog.LevelError,
		},
		{
			name:  "case insensitive",
			input: "DEBUG",
			want:  slog.LevelDebug,
		},
		{
			name:    "unknown level",
			input:   "verbose",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseLogLevel(%q) returned no error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLogLevel(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRegisterAllTools(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	for _, readOnly := range []bool{true, false} {
		sc, err := server.NewServerContext(context.Background())
		if err != nil {
			t.Fatalf("NewServerContext returned error: %v", err)
		}
		t.Cleanup(func() { _ = sc.Shutdown() })

		mcpSrv := mcpserver.NewMCPServer("test", "0.0.0",
			mcpserver.WithToolCapabilities(true),
			mcpserver.WithResourceCapabilities(false, false),
		)
		if err := registerAllTools(mcpSrv, sc, readOnly); err != nil {
			t.Errorf("registerAllTools(readOnly=%v) returned error: %v", readOnly, err)
		}
	}
}
