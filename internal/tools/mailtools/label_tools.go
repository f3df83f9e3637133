package mailtools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailgate/mailgate/internal/gmail"
	"github.com/mailgate/mailgate/internal/server"
	"github.com/mailgate/mailgate/internal/tools/batch"
	"github.com/mailgate/mailgate/internal/tools/common"
)

// RegisterLabelTools registers label tools with the MCP server. The mutating
// tools are only registered when not in read-only mode.
func RegisterLabelTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List labels tool (read-only, always available)
	listLabelsTool := mcp.NewTool("list_labels",
		mcp.WithDescription("List all labels in the Gmail account"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(listLabelsTool, common.InstrumentedToolHandlerWithService(
		"list_labels", "gmail", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListLabels(ctx, request, sc)
		}))

	// Register mutating tools only if not in read-only mode
	if !readOnly {
		// Modify labels tool
		modifyLabelsTool := mcp.NewTool("modify_labels",
			mcp.WithDescription("Add and/or remove labels on a single message and return its new state"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("messageId",
				mcp.Required(),
				mcp.Description("The ID of the Gmail message"),
			),
			mcp.WithString("addLabels",
				mcp.Description("Label ID (string) or array of label IDs to add"),
			),
			mcp.WithString("removeLabels",
				mcp.Description("Label ID (string) or array of label IDs to remove"),
			),
		)

		s.AddTool(modifyLabelsTool, common.InstrumentedToolHandlerWithService(
			"modify_labels", "gmail", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleModifyLabels(ctx, request, sc)
			}))

		// Batch modify labels tool
		batchModifyLabelsTool := mcp.NewTool("batch_modify_labels",
			mcp.WithDescription("Apply one label change to up to 1000 messages in a single request"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("messageIds",
				mcp.Required(),
				mcp.Description("Message ID (string) or array of message IDs"),
			),
			mcp.WithString("addLabels",
				mcp.Description("Label ID (string) or array of label IDs to add"),
			),
			mcp.WithString("removeLabels",
				mcp.Description("Label ID (string) or array of label IDs to remove"),
			),
		)

		s.AddTool(batchModifyLabelsTool, common.InstrumentedToolHandlerWithService(
			"batch_modify_labels", "gmail", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleBatchModifyLabels(ctx, request, sc)
			}))

		// Archive tool (supports single or multiple messages)
		archiveEmailTool := mcp.NewTool("archive_email",
			mcp.WithDescription("Archive one or more messages by removing them from the inbox"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("messageIds",
				mcp.Required(),
				mcp.Description("Message ID (string) or array of message IDs to archive"),
			),
		)

		s.AddTool(archiveEmailTool, common.InstrumentedToolHandlerWithService(
			"archive_email", "gmail", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleArchiveEmail(ctx, request, sc)
			}))

		// Trash tool
		trashEmailTool := mcp.NewTool("trash_email",
			mcp.WithDescription("Move one or more messages to the trash"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("messageIds",
				mcp.Required(),
				mcp.Description("Message ID (string) or array of message IDs to trash"),
			),
		)

		s.AddTool(trashEmailTool, common.InstrumentedToolHandlerWithService(
			"trash_email", "gmail", "delete", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleTrashEmail(ctx, request, sc)
			}))

		// Mark read tool
		markReadTool := mcp.NewTool("mark_read",
			mcp.WithDescription("Mark one or more messages as read"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("messageIds",
				mcp.Required(),
				mcp.Description("Message ID (string) or array of message IDs to mark as read"),
			),
		)

		s.AddTool(markReadTool, common.InstrumentedToolHandlerWithService(
			"mark_read", "gmail", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleMarkRead(ctx, request, sc)
			}))

		// Mark unread tool
		markUnreadTool := mcp.NewTool("mark_unread",
			mcp.WithDescription("Mark one or more messages as unread"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
			),
			mcp.WithString("messageIds",
				mcp.Required(),
				mcp.Description("Message ID (string) or array of message IDs to mark as unread"),
			),
		)

		s.AddTool(markUnreadTool, common.InstrumentedToolHandlerWithService(
			"mark_unread", "gmail", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleMarkUnread(ctx, request, sc)
			}))
	}

	return nil
}

// parseOptionalStringOrArray parses a parameter that may be absent entirely;
// when present it accepts a single string or an array of strings.
func parseOptionalStringOrArray(args map[string]interface{}, paramName string) ([]string, error) {
	val, ok := args[paramName]
	if !ok || val == nil {
		return nil, nil
	}
	return batch.ParseStringOrArray(val, paramName)
}

// parseLabelDelta reads the addLabels/removeLabels arguments into a delta.
func parseLabelDelta(args map[string]interface{}) (gmail.LabelDelta, error) {
	addLabels, err := parseOptionalStringOrArray(args, "addLabels")
	if err != nil {
		return gmail.LabelDelta{}, err
	}

	removeLabels, err := parseOptionalStringOrArray(args, "removeLabels")
	if err != nil {
		return gmail.LabelDelta{}, err
	}

	if len(addLabels) == 0 && len(removeLabels) == 0 {
		return gmail.LabelDelta{}, fmt.Errorf("at least one of addLabels or removeLabels is required")
	}

	return gmail.LabelDelta{Add: addLabels, Remove: removeLabels}, nil
}

func handleListLabels(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	labels, err := client.ListLabels(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list labels: %v", err)), nil
	}

	if len(labels) == 0 {
		return mcp.NewToolResultText("No labels found"), nil
	}

	jsonBytes, err := json.MarshalIndent(labels, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format output: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Found %d label(s):\n%s", len(labels), string(jsonBytes))), nil
}

func handleModifyLabels(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	messageID, ok := args["messageId"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("messageId is required"), nil
	}

	delta, err := parseLabelDelta(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	email, err := client.ModifyLabels(ctx, messageID, delta)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to modify labels: %v", err)), nil
	}

	jsonBytes, err := json.MarshalIndent(email, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format output: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Labels modified successfully:\n%s", string(jsonBytes))), nil
}

func handleBatchModifyLabels(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	delta, err := parseLabelDelta(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.BatchModifyLabels(ctx, messageIDs, delta); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to batch modify labels: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Modified labels on %d message(s)", len(messageIDs))), nil
}

func handleArchiveEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(messageIDs, func(messageID string) (string, error) {
		if _, err := client.Archive(ctx, messageID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Message %s archived", messageID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleTrashEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(messageIDs, func(messageID string) (string, error) {
		if _, err := client.Trash(ctx, messageID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Message %s moved to trash", messageID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleMarkRead(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(messageIDs, func(messageID string) (string, error) {
		if _, err := client.MarkRead(ctx, messageID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Message %s marked as read", messageID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleMarkUnread(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getGmailClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(messageIDs, func(messageID string) (string, error) {
		if _, err := client.MarkUnread(ctx, messageID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Message %s marked as unread", messageID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}
