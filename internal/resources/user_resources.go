package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailgate/mailgate/internal/server"
)

// resourceAccount names the account resources are served for. Resources have
// fixed URIs and carry no arguments, so they always describe the default
// account; per-account data goes through the tools instead.
const resourceAccount = "default"

// RegisterUserResources registers account-level resources with the MCP
// server: the Gmail profile and the label catalog.
func RegisterUserResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Register user profile resource
	profileResource := mcp.NewResource(
		"user://profile",
		"Current User Profile",
		mcp.WithResourceDescription("Profile of the Gmail account: address, message and thread counts"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(profileResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleUserProfile(ctx, request, sc)
	})

	// Register label catalog resource
	labelsResource := mcp.NewResource(
		"user://labels",
		"Gmail Labels",
		mcp.WithResourceDescription("Label catalog of the Gmail account, system and user labels"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(labelsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleAccountLabels(ctx, request, sc)
	})

	return nil
}

// handleUserProfile returns information about the account's Gmail profile
func handleUserProfile(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	gmailClient := sc.GmailClientForAccount(resourceAccount)
	if gmailClient == nil {
		return nil, fmt.Errorf("no Gmail client available for account: %s", resourceAccount)
	}

	profile, err := gmailClient.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	profileData := map[string]interface{}{
		"account":       resourceAccount,
		"email":         profile.EmailAddress,
		"historyId":     profile.HistoryId,
		"messagesTotal": profile.MessagesTotal,
		"threadsTotal":  profile.ThreadsTotal,
	}

	jsonData, err := json.MarshalIndent(profileData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleAccountLabels returns the account's label catalog
func handleAccountLabels(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	gmailClient := sc.GmailClientForAccount(resourceAccount)
	if gmailClient == nil {
		return nil, fmt.Errorf("no Gmail client available for account: %s", resourceAccount)
	}

	labels, err := gmailClient.ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	labelData := map[string]interface{}{
		"account": resourceAccount,
		"count":   len(labels),
		"labels":  labels,
	}

	jsonData, err := json.MarshalIndent(labelData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal label data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
