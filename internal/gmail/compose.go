package gmail

import (
	"context"
	"encoding/base64"
	"mime"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

// validateOutgoing rejects messages that cannot be composed at all. Address
// syntax is not checked here; the tool input schema vets addresses before
// they reach this layer.
func validateOutgoing(msg *OutgoingMessage) error {
	if len(msg.To) == 0 {
		return invalidArgf("at least one recipient is required")
	}
	switch msg.ContentType {
	case "", mimeTextPlain, mimeTextHTML:
	default:
		return invalidArgf("unsupported content type %q", msg.ContentType)
	}
	return nil
}

// buildRawMessage assembles the RFC 5322 message and encodes it into the
// base64url form the provider's Raw field expects.
func buildRawMessage(msg *OutgoingMessage) string {
	contentType := msg.ContentType
	if contentType == "" {
		contentType = mimeTextPlain
	}

	var emailBuilder strings.Builder

	emailBuilder.WriteString("To: ")
	emailBuilder.WriteString(strings.Join(msg.To, ", "))
	emailBuilder.WriteString("\r\n")

	if len(msg.Cc) > 0 {
		emailBuilder.WriteString("Cc: ")
		emailBuilder.WriteString(strings.Join(msg.Cc, ", "))
		emailBuilder.WriteString("\r\n")
	}

	if len(msg.Bcc) > 0 {
		emailBuilder.WriteString("Bcc: ")
		emailBuilder.WriteString(strings.Join(msg.Bcc, ", "))
		emailBuilder.WriteString("\r\n")
	}

	// Encode the subject for non-ASCII characters like umlauts
	emailBuilder.WriteString("Subject: ")
	emailBuilder.WriteString(encodeRFC2047(msg.Subject))
	emailBuilder.WriteString("\r\n")

	emailBuilder.WriteString("Content-Type: ")
	emailBuilder.WriteString(contentType)
	emailBuilder.WriteString("; charset=\"UTF-8\"\r\n")
	emailBuilder.WriteString("MIME-Version: 1.0\r\n")
	emailBuilder.WriteString("\r\n")
	emailBuilder.WriteString(msg.Body)

	return base64.URLEncoding.EncodeToString([]byte(emailBuilder.String()))
}

// encodeRFC2047 encodes a header value for non-ASCII content. ASCII-only
// values pass through unchanged.
func encodeRFC2047(s string) string {
	needsEncoding := false
	for _, r := range s {
		if r > 127 {
			needsEncoding = true
			break
		}
	}
	if !needsEncoding {
		return s
	}

	return mime.BEncoding.Encode("UTF-8", s)
}

// CreateDraft stores the composed message as a draft without sending it.
func (c *Client) CreateDraft(ctx context.Context, msg *OutgoingMessage) (*DraftResult, error) {
	if err := validateOutgoing(msg); err != nil {
		return nil, err
	}

	draft, err := c.api.createDraft(ctx, &gmail.Draft{
		Message: &gmail.Message{Raw: buildRawMessage(msg)},
	})
	if err != nil {
		return nil, providerErrf("creating draft", err)
	}

	result := &DraftResult{ID: draft.Id}
	if draft.Message != nil {
		result.Message = MessageRef{ID: draft.Message.Id, ThreadID: draft.Message.ThreadId}
	}

	return result, nil
}

// Send composes and sends the message immediately.
func (c *Client) Send(ctx context.Context, msg *OutgoingMessage) (*SendResult, error) {
	if err := validateOutgoing(msg); err != nil {
		return nil, err
	}

	sent, err := c.api.sendMessage(ctx, &gmail.Message{Raw: buildRawMessage(msg)})
	if err != nil {
		return nil, providerErrf("sending email", err)
	}

	return &SendResult{ID: sent.Id, ThreadID: sent.ThreadId}, nil
}
