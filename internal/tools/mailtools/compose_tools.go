package mailtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailgate/mailgate/internal/gmail"
	"github.com/mailgate/mailgate/internal/server"
	"github.com/mailgate/mailgate/internal/tools/common"
)

// RegisterComposeTools registers draft and send tools with the MCP server.
// Both mutate the mailbox, so neither is registered in read-only mode.
func RegisterComposeTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if readOnly {
		return nil
	}

	// Create draft tool
	createDraftTool := mcp.NewTool("create_draft",
		mcp.WithDescription("Create a draft email in Gmail without sending it"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Email subject"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Email body content"),
		),
		mcp.WithString("cc",
			mcp.Description("CC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("bcc",
			mcp.Description("BCC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithBoolean("isHTML",
			mcp.Description("Whether the body is HTML (default: false for plain text)"),
		),
	)

	s.AddTool(createDraftTool, common.InstrumentedToolHandlerWithService(
		"create_draft", "gmail", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateDraft(ctx, request, sc)
		}))

	// Send email tool
	sendEmailTool := mcp.NewTool("send_email",
		mcp.WithDescription("Send an email through Gmail"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Email subject"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Email body content"),
		),
		mcp.WithString("cc",
			mcp.Description("CC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("bcc",
			mcp.Description("BCC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithBoolean("isHTML",
			mcp.Description("Whether the body is HTML (default: false for plain text)"),
		),
	)

	s.AddTool(sendEmailTool, common.InstrumentedToolHandlerWithService(
		"send_email", "gmail", "send", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSendEmail(ctx, request, sc)
		}))

	return nil
}

// parseOutgoingMessage validates the compose arguments shared by draft
// creation and sending.
func parseOutgoingMessage(args map[string]interface{}) (*gmail.OutgoingMessage, error) {
	toStr, ok := args["to"].(string)
	if !ok || toStr == "" {
		return nil, fmt.Errorf("'to' field is required")
	}

	subject, ok := args["subject"].(string)
	if !ok || subject == "" {
		return nil, fmt.Errorf("'subject' field is required")
	}

	body, ok := args["body"].(string)
	if !ok || body == "" {
		return nil, fmt.Errorf("'body' field is required")
	}

	ccStr := ""
	if ccVal, ok := args["cc"].(string); ok {
		ccStr = ccVal
	}

	bccStr := ""
	if bccVal, ok := args["bcc"].(string); ok {
		bccStr = bccVal
	}

	contentType := "text/plain"
	if isHTMLVal, ok := args["isHTML"].(bool); ok && isHTMLVal {
		contentType = "text/html"
	}

	return &gmail.OutgoingMessage{
		To:          splitEmailAddresses(toStr),
		Cc:          splitEmailAddresses(ccStr),
		Bcc:         splitEmailAddresses(bccStr),
		Subject:     subject,
		Body:        body,
		ContentType: contentType,
	}, nil
}

func handleCreateDraft(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	msg, err := parseOutgoingMessage(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	draft, err := client.CreateDraft(ctx, msg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create draft: %v", err)), nil
	}

	result := fmt.Sprintf("Draft created successfully!\nDraft ID: %s\nMessage ID: %s\nThread ID: %s\nTo: %s\nSubject: %s",
		draft.ID, draft.Message.ID, draft.Message.ThreadID, strings.Join(msg.To, ", "), msg.Subject)

	return mcp.NewToolResultText(result), nil
}

func handleSendEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	msg, err := parseOutgoingMessage(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sent, err := client.Send(ctx, msg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send email: %v", err)), nil
	}

	result := fmt.Sprintf("Email sent successfully!\nMessage ID: %s\nThread ID: %s\nTo: %s\nSubject: %s",
		sent.ID, sent.ThreadID, strings.Join(msg.To, ", "), msg.Subject)

	if len(msg.Cc) > 0 {
		result += fmt.Sprintf("\nCC: %s", strings.Join(msg.Cc, ", "))
	}
	if len(msg.Bcc) > 0 {
		result += fmt.Sprintf("\nBCC: %s", strings.Join(msg.Bcc, ", "))
	}

	return mcp.NewToolResultText(result), nil
}

// splitEmailAddresses splits a comma-separated string of email addresses
func splitEmailAddresses(addresses string) []string {
	if addresses == "" {
		return nil
	}

	parts := strings.Split(addresses, ",")
	result := make([]string, 0, len(parts))
	for _, addr := range parts {
		trimmed := strings.TrimSpace(addr)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
