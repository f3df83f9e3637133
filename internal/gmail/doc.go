// Package gmail provides a client for interacting with the Gmail API.
//
// This package offers the mail access surface of mailgate:
//   - Query-based search with pagination and optional body extraction
//   - Single-message reads with MIME body traversal
//   - Label mutation (single and batch), including archive/trash/read-state sugar
//   - Draft creation and immediate send with RFC 5322 message construction
//   - Attachment listing and download
//   - Label catalog listing
//
// Every message leaving this package is a normalized EmailMessage with
// documented placeholder defaults for absent headers, so callers never have
// to guard against missing fields.
//
// The client supports multi-account authentication using the Google OAuth2
// flow and can manage mail across multiple Google accounts. Tokens are loaded
// from the file system (~/.cache/mailgate/).
//
// Errors fall into two kinds: ErrInvalidArgument for requests rejected before
// any network call, and ErrProvider for Gmail API failures, which wrap the
// underlying error verbatim. Both are detectable with errors.Is.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Search the inbox, two results per page, headers only
//	result, err := client.Search(ctx, "in:inbox", 2, false, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Archive the first hit
//	if len(result.Emails) > 0 {
//	    _, err = client.ModifyLabels(ctx, result.Emails[0].ID, gmail.LabelDelta{
//	        Remove: []string{"INBOX"},
//	    })
//	}
package gmail
