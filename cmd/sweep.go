package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/internal/gmail"
	"github.com/mailgate/mailgate/internal/logging"
)

// sweepPageSize is how many messages are listed and modified per round trip.
// It stays well under the provider's batch mutation cap.
const sweepPageSize = 100

// sweepClient is the slice of the Gmail client the sweep loop needs.
type sweepClient interface {
	Search(ctx context.Context, query string, maxResults int64, includeBody bool, pageToken string) (*gmail.SearchResult, error)
	BatchModifyLabels(ctx context.Context, messageIDs []string, delta gmail.LabelDelta) error
}

// sweepOptions carries the sweep flags into the loop.
type sweepOptions struct {
	query     string
	addLabels string
	max       int64
	dryRun    bool
}

func newSweepCmd() *cobra.Command {
	var (
		account   string
		query     string
		addLabels string
		max       int64
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Archive messages matching a Gmail query",
		Long: `Search for messages matching a Gmail query and archive them in batches.
Archiving removes the INBOX label; the messages stay searchable under
"All Mail". Additional labels can be applied to the swept messages with
--add-labels.

Run with --dry-run first to see what would be archived.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer cancel()

			client, err := gmail.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
			}

			opts := sweepOptions{
				query:     query,
				addLabels: addLabels,
				max:       max,
				dryRun:    dryRun,
			}
			n, err := runSweep(ctx, client, opts, logging.DefaultLogger())
			if err != nil {
				return fmt.Errorf("sweep stopped after %d message(s): %w", n, err)
			}

			if dryRun {
				fmt.Printf("Dry run: %d message(s) matching %q would be archived\n", n, query)
			} else {
				fmt.Printf("Archived %d message(s) matching %q\n", n, query)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().StringVar(&query, "query", "in:inbox", "Gmail search query selecting the messages to sweep")
	cmd.Flags().StringVar(&addLabels, "add-labels", "", "Comma-separated label ids to apply to swept messages")
	cmd.Flags().Int64Var(&max, "max", 0, "Maximum number of messages to sweep (0 means no limit)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the matching messages without changing them")

	return cmd
}

// runSweep pages through the query results and archives each page, logging
// progress as it goes. It returns how many messages were archived, or in
// dry-run mode how many matched.
//
// Page tokens come from the pre-mutation listing, so a message the provider
// shifts across a page boundary mid-sweep is picked up by the next run.
func runSweep(ctx context.Context, client sweepClient, opts sweepOptions, logger logging.Logger) (int, error) {
	delta := buildSweepDelta(opts.addLabels)

	var (
		swept     int
		pageToken string
	)
	for {
		pageSize := int64(sweepPageSize)
		if opts.max > 0 {
			remaining := opts.max - int64(swept)
			if remaining <= 0 {
				break
			}
			if remaining < pageSize {
				pageSize = remaining
			}
		}

		result, err := client.Search(ctx, opts.query, pageSize, false, pageToken)
		if err != nil {
			return swept, fmt.Errorf("failed to search messages: %w", err)
		}

		ids := make([]string, 0, len(result.Emails))
		for _, email := range result.Emails {
			ids = append(ids, email.ID)
			if opts.dryRun {
				logger.Info("would archive message",
					"id", email.ID,
					"from", email.From,
					"subject", email.Subject)
			}
		}

		if len(ids) > 0 && !opts.dryRun {
			if err := client.BatchModifyLabels(ctx, ids, delta); err != nil {
				return swept, fmt.Errorf("failed to modify labels on batch: %w", err)
			}
			logger.Info("archived batch", "count", len(ids), "query", opts.query)
		}
		swept += len(ids)

		if !result.HasMore {
			break
		}
		pageToken = result.NextPageToken
	}

	return swept, nil
}

// buildSweepDelta returns the label delta a sweep applies: INBOX is always
// removed, plus any extra labels to add.
func buildSweepDelta(addLabels string) gmail.LabelDelta {
	return gmail.LabelDelta{
		Add:    parseCommaSeparatedList(addLabels),
		Remove: []string{gmail.LabelInbox},
	}
}

// parseCommaSeparatedList parses a comma-separated string into a slice,
// trimming whitespace from each element and filtering out empty strings.
// Returns nil if the input is empty or contains only whitespace/commas.
func parseCommaSeparatedList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
