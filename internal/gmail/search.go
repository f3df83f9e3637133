package gmail

import (
	"context"
)

// Search runs a Gmail query and returns one normalized page of results.
//
// Detail fetches for the listed ids are issued strictly sequentially in
// result order; when includeBody is false only the metadata representation
// is requested, so the provider never ships body payloads that would be
// thrown away. Any failure during the page discards the partial page and
// returns a provider error.
func (c *Client) Search(ctx context.Context, query string, maxResults int64, includeBody bool, pageToken string) (*SearchResult, error) {
	list, err := c.api.listMessages(ctx, query, maxResults, pageToken)
	if err != nil {
		return nil, providerErrf("searching messages", err)
	}

	emails := make([]EmailMessage, 0, len(list.Messages))
	for _, ref := range list.Messages {
		if ref.Id == "" {
			continue
		}
		email, err := c.fetchMessage(ctx, ref.Id, includeBody)
		if err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}

	result := &SearchResult{
		Emails:        emails,
		TotalEstimate: list.ResultSizeEstimate,
		HasMore:       list.NextPageToken != "",
	}
	if result.HasMore {
		result.NextPageToken = list.NextPageToken
	}

	return result, nil
}

// GetEmail retrieves and normalizes a single message by id.
func (c *Client) GetEmail(ctx context.Context, id string, includeBody bool) (EmailMessage, error) {
	if id == "" {
		return EmailMessage{}, invalidArgf("message id is required")
	}
	return c.fetchMessage(ctx, id, includeBody)
}

// fetchMessage retrieves one message in the cheapest format that satisfies
// the request and normalizes it.
func (c *Client) fetchMessage(ctx context.Context, id string, includeBody bool) (EmailMessage, error) {
	format := formatMetadata
	if includeBody {
		format = formatFull
	}

	msg, err := c.api.getMessage(ctx, id, format)
	if err != nil {
		return EmailMessage{}, providerErrf("getting message "+id, err)
	}

	return normalizeMessage(msg, includeBody), nil
}
