package mailtools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailgate/mailgate/internal/server"
	"github.com/mailgate/mailgate/internal/tools/common"
)

// defaultMaxResults is the page size used when the caller does not set one.
const defaultMaxResults = 10

// RegisterSearchTools registers search and read tools with the MCP server
func RegisterSearchTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Search emails tool
	searchEmailsTool := mcp.NewTool("search_emails",
		mcp.WithDescription("Search emails with a Gmail query, returning one page of results"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query (e.g., 'in:inbox', 'from:user@example.com is:unread')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results per page (default: 10)"),
		),
		mcp.WithBoolean("includeBody",
			mcp.Description("Include the message body in each result (default: false)"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Continuation token from a previous search to fetch the next page"),
		),
	)

	s.AddTool(searchEmailsTool, common.InstrumentedToolHandlerWithService(
		"search_emails", "gmail", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchEmails(ctx, request, sc)
		}))

	// Read email tool
	readEmailTool := mcp.NewTool("read_email",
		mcp.WithDescription("Read a single email by message ID"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the Gmail message"),
		),
		mcp.WithBoolean("includeBody",
			mcp.Description("Include the message body (default: true)"),
		),
	)

	s.AddTool(readEmailTool, common.InstrumentedToolHandlerWithService(
		"read_email", "gmail", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReadEmail(ctx, request, sc)
		}))

	return nil
}

func handleSearchEmails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	maxResults := int64(defaultMaxResults)
	if maxResultsVal, ok := args["maxResults"].(float64); ok {
		maxResults = int64(maxResultsVal)
	}

	includeBody := false
	if includeBodyVal, ok := args["includeBody"].(bool); ok {
		includeBody = includeBodyVal
	}

	pageToken := ""
	if pageTokenVal, ok := args["pageToken"].(string); ok {
		pageToken = pageTokenVal
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := client.Search(ctx, query, maxResults, includeBody, pageToken)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search emails: %v", err)), nil
	}

	if len(result.Emails) == 0 && !result.HasMore {
		return mcp.NewToolResultText("No emails found matching query"), nil
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format output: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Found %d email(s):\n%s", len(result.Emails), string(jsonBytes))), nil
}

func handleReadEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	includeBody := true
	if includeBodyVal, ok := args["includeBody"].(bool); ok {
		includeBody = includeBodyVal
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	email, err := client.GetEmail(ctx, messageID, includeBody)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read email: %v", err)), nil
	}

	jsonBytes, err := json.MarshalIndent(email, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format output: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
