package mailtools

import (
	"context"
	"errors"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailgate/mailgate/internal/gmail"
	"github.com/mailgate/mailgate/internal/server"
)

// RegisterMailTools registers all mail tools with the MCP server. In
// read-only mode only the non-mutating tools are registered.
func RegisterMailTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := RegisterSearchTools(s, sc); err != nil {
		return fmt.Errorf("failed to register search tools: %w", err)
	}

	if err := RegisterLabelTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register label tools: %w", err)
	}

	if err := RegisterComposeTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register compose tools: %w", err)
	}

	if err := RegisterAttachmentTools(s, sc); err != nil {
		return fmt.Errorf("failed to register attachment tools: %w", err)
	}

	return nil
}

// getGmailClient returns the Gmail client for the given account, creating and
// caching one when a stored token exists. Without a token it fails with the
// guidance message telling the caller how to provision one.
func getGmailClient(ctx context.Context, account string, sc *server.ServerContext) (*gmail.Client, error) {
	client := sc.GmailClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !gmail.HasTokenForAccount(account) {
			return nil, errors.New(gmail.AuthenticationErrorMessage(account))
		}

		var err error
		client, err = gmail.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
		}
		sc.SetGmailClientForAccount(account, client)
	}
	return client, nil
}
