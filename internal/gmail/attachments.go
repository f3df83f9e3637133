package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

const (
	// MaxAttachmentSize defines the maximum attachment size in bytes (25MB)
	MaxAttachmentSize = 25 * 1024 * 1024

	// unnamedAttachment is the filename reported for parts without one.
	unnamedAttachment = "unnamed"
)

// ListAttachments extracts metadata for all attachments of a message. Parts
// without an attachment id (inline bodies) are skipped.
func (c *Client) ListAttachments(ctx context.Context, messageID string) ([]AttachmentInfo, error) {
	if messageID == "" {
		return nil, invalidArgf("message id is required")
	}

	msg, err := c.api.getMessage(ctx, messageID, formatFull)
	if err != nil {
		return nil, providerErrf("getting message "+messageID, err)
	}

	var attachments []AttachmentInfo
	if msg.Payload == nil {
		return attachments, nil
	}

	// Same explicit-stack traversal as the body walk, here collecting every
	// matching part instead of stopping at the first hit.
	stack := []*gmail.MessagePart{msg.Payload}
	for len(stack) > 0 {
		part := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if part == nil {
			continue
		}

		if part.Body != nil && part.Body.AttachmentId != "" {
			filename := part.Filename
			if filename == "" {
				filename = unnamedAttachment
			}
			attachments = append(attachments, AttachmentInfo{
				MessageID:    messageID,
				AttachmentID: part.Body.AttachmentId,
				Filename:     filename,
				MimeType:     part.MimeType,
				Size:         part.Body.Size,
			})
		}

		for i := len(part.Parts) - 1; i >= 0; i-- {
			stack = append(stack, part.Parts[i])
		}
	}

	return attachments, nil
}

// GetAttachment retrieves and decodes the content of one attachment.
func (c *Client) GetAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	if messageID == "" {
		return nil, invalidArgf("message id is required")
	}
	if attachmentID == "" {
		return nil, invalidArgf("attachment id is required")
	}

	attachment, err := c.api.getAttachment(ctx, messageID, attachmentID)
	if err != nil {
		return nil, providerErrf("getting attachment "+attachmentID, err)
	}

	if attachment.Size > MaxAttachmentSize {
		return nil, fmt.Errorf("attachment size %d exceeds maximum size %d", attachment.Size, MaxAttachmentSize)
	}

	// Decode base64url-encoded data (Gmail API uses RFC 4648 base64url encoding)
	data, err := base64.URLEncoding.DecodeString(attachment.Data)
	if err != nil {
		// Try with standard base64 if URLEncoding fails
		data, err = base64.StdEncoding.DecodeString(attachment.Data)
		if err != nil {
			return nil, providerErrf("decoding attachment data", err)
		}
	}

	return data, nil
}

// SanitizeFilename sanitizes a filename to prevent path traversal attacks
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = strings.ReplaceAll(filename, "..", "_")
	return filename
}
