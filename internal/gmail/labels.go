package gmail

import (
	"context"

	gmail "google.golang.org/api/gmail/v1"
)

// Well-known Gmail system label ids used by the convenience mutations.
const (
	LabelInbox  = "INBOX"
	LabelTrash  = "TRASH"
	LabelUnread = "UNREAD"
)

// maxBatchSize is the provider's per-request cap on batch label mutations.
const maxBatchSize = 1000

// ModifyLabels applies a label delta to one message and returns the freshly
// normalized post-mutation message. The provider's modify response carries
// ids and labels but no headers, so header fields come back as placeholders;
// the label set reflects the completed mutation.
func (c *Client) ModifyLabels(ctx context.Context, messageID string, delta LabelDelta) (EmailMessage, error) {
	if messageID == "" {
		return EmailMessage{}, invalidArgf("message id is required")
	}
	if delta.empty() {
		return EmailMessage{}, invalidArgf("label delta must add or remove at least one label")
	}

	msg, err := c.api.modifyMessage(ctx, messageID, &gmail.ModifyMessageRequest{
		AddLabelIds:    delta.Add,
		RemoveLabelIds: delta.Remove,
	})
	if err != nil {
		return EmailMessage{}, providerErrf("modifying labels on message "+messageID, err)
	}

	return normalizeMessage(msg, false), nil
}

// BatchModifyLabels applies one label delta to up to maxBatchSize messages
// in a single provider request. The provider applies the batch atomically
// from the caller's perspective and returns no per-message state.
func (c *Client) BatchModifyLabels(ctx context.Context, messageIDs []string, delta LabelDelta) error {
	if len(messageIDs) == 0 {
		return invalidArgf("at least one message id is required")
	}
	if len(messageIDs) > maxBatchSize {
		return invalidArgf("batch size %d exceeds the maximum of %d", len(messageIDs), maxBatchSize)
	}
	if delta.empty() {
		return invalidArgf("label delta must add or remove at least one label")
	}

	err := c.api.batchModifyMessages(ctx, &gmail.BatchModifyMessagesRequest{
		Ids:            messageIDs,
		AddLabelIds:    delta.Add,
		RemoveLabelIds: delta.Remove,
	})
	if err != nil {
		return providerErrf("batch modifying labels", err)
	}

	return nil
}

// Archive removes a message from the inbox.
func (c *Client) Archive(ctx context.Context, messageID string) (EmailMessage, error) {
	return c.ModifyLabels(ctx, messageID, LabelDelta{Remove: []string{LabelInbox}})
}

// Trash moves a message to the trash.
func (c *Client) Trash(ctx context.Context, messageID string) (EmailMessage, error) {
	return c.ModifyLabels(ctx, messageID, LabelDelta{Add: []string{LabelTrash}, Remove: []string{LabelInbox}})
}

// MarkRead clears the unread marker on a message.
func (c *Client) MarkRead(ctx context.Context, messageID string) (EmailMessage, error) {
	return c.ModifyLabels(ctx, messageID, LabelDelta{Remove: []string{LabelUnread}})
}

// MarkUnread sets the unread marker on a message.
func (c *Client) MarkUnread(ctx context.Context, messageID string) (EmailMessage, error) {
	return c.ModifyLabels(ctx, messageID, LabelDelta{Add: []string{LabelUnread}})
}

// ListLabels returns the account's label catalog.
func (c *Client) ListLabels(ctx context.Context) ([]LabelInfo, error) {
	resp, err := c.api.listLabels(ctx)
	if err != nil {
		return nil, providerErrf("listing labels", err)
	}

	labels := make([]LabelInfo, 0, len(resp.Labels))
	for _, l := range resp.Labels {
		labels = append(labels, LabelInfo{
			ID:   l.Id,
			Name: l.Name,
			Type: l.Type,
		})
	}

	return labels, nil
}
