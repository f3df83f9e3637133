package gmail

import (
	"context"
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mailgate/mailgate/internal/google"
)

// Message fetch formats understood by the Gmail API.
const (
	formatFull     = "full"
	formatMetadata = "metadata"
)

// metadataHeaders are the only headers requested on metadata-only fetches.
// Everything the normalizer consumes is derived from these four.
var metadataHeaders = []string{"Subject", "From", "To", "Date"}

// api is the narrow slice of the Gmail API this package depends on.
// Production clients use usersAPI; tests substitute a fake to observe
// request shapes without network access.
type api interface {
	listMessages(ctx context.Context, query string, maxResults int64, pageToken string) (*gmail.ListMessagesResponse, error)
	getMessage(ctx context.Context, id, format string) (*gmail.Message, error)
	modifyMessage(ctx context.Context, id string, req *gmail.ModifyMessageRequest) (*gmail.Message, error)
	batchModifyMessages(ctx context.Context, req *gmail.BatchModifyMessagesRequest) error
	sendMessage(ctx context.Context, msg *gmail.Message) (*gmail.Message, error)
	createDraft(ctx context.Context, draft *gmail.Draft) (*gmail.Draft, error)
	getAttachment(ctx context.Context, messageID, attachmentID string) (*gmail.MessagePartBody, error)
	listLabels(ctx context.Context) (*gmail.ListLabelsResponse, error)
	getProfile(ctx context.Context) (*gmail.Profile, error)
}

// usersAPI implements api against the real Gmail Users service.
type usersAPI struct {
	svc *gmail.UsersService
}

func (u *usersAPI) listMessages(ctx context.Context, query string, maxResults int64, pageToken string) (*gmail.ListMessagesResponse, error) {
	call := u.svc.Messages.List("me").Q(query).MaxResults(maxResults)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	return call.Context(ctx).Do()
}

func (u *usersAPI) getMessage(ctx context.Context, id, format string) (*gmail.Message, error) {
	call := u.svc.Messages.Get("me", id).Format(format)
	if format == formatMetadata {
		call = call.MetadataHeaders(metadataHeaders...)
	}
	return call.Context(ctx).Do()
}

func (u *usersAPI) modifyMessage(ctx context.Context, id string, req *gmail.ModifyMessageRequest) (*gmail.Message, error) {
	return u.svc.Messages.Modify("me", id, req).Context(ctx).Do()
}

func (u *usersAPI) batchModifyMessages(ctx context.Context, req *gmail.BatchModifyMessagesRequest) error {
	return u.svc.Messages.BatchModify("me", req).Context(ctx).Do()
}

func (u *usersAPI) sendMessage(ctx context.Context, msg *gmail.Message) (*gmail.Message, error) {
	return u.svc.Messages.Send("me", msg).Context(ctx).Do()
}

func (u *usersAPI) createDraft(ctx context.Context, draft *gmail.Draft) (*gmail.Draft, error) {
	return u.svc.Drafts.Create("me", draft).Context(ctx).Do()
}

func (u *usersAPI) getAttachment(ctx context.Context, messageID, attachmentID string) (*gmail.MessagePartBody, error) {
	return u.svc.Messages.Attachments.Get("me", messageID, attachmentID).Context(ctx).Do()
}

func (u *usersAPI) listLabels(ctx context.Context) (*gmail.ListLabelsResponse, error) {
	return u.svc.Labels.List("me").Context(ctx).Do()
}

func (u *usersAPI) getProfile(ctx context.Context) (*gmail.Profile, error) {
	return u.svc.GetProfile("me").Context(ctx).Do()
}

// Client provides the mail access operations for one Gmail account.
type Client struct {
	api     api
	account string
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return google.HasToken()
}

// AuthenticationErrorMessage returns the guidance shown to callers when no
// stored token exists for the account.
func AuthenticationErrorMessage(account string) string {
	return google.GetAuthenticationErrorMessage(account)
}

// NewClientForAccount creates a new Gmail client with OAuth2 authentication
// for a specific account. A token for the account must already be stored on
// disk; there is no interactive authorization flow.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{
		api:     &usersAPI{svc: svc.Users},
		account: account,
	}, nil
}

// NewClient creates a new Gmail client for the default account.
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// GetProfile retrieves the account profile (address, message and thread
// counts, history id).
func (c *Client) GetProfile(ctx context.Context) (*gmail.Profile, error) {
	profile, err := c.api.getProfile(ctx)
	if err != nil {
		return nil, providerErrf("getting profile", err)
	}
	return profile, nil
}
