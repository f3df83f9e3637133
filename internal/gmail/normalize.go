package gmail

import (
	gmail "google.golang.org/api/gmail/v1"
)

// Placeholder values for absent or undecodable message content.
const (
	noSubjectPlaceholder = "(no subject)"
	unknownPlaceholder   = "(unknown)"
	noBodyPlaceholder    = "(no body)"
	decodeErrPlaceholder = "(error decoding body)"
)

// headerValue returns the value of the first header with the given name, or
// the empty string. Matching is exact and case-sensitive; Gmail reports the
// standard headers with canonical capitalization.
func headerValue(m *gmail.Message, header string) string {
	if m == nil || m.Payload == nil {
		return ""
	}
	for _, h := range m.Payload.Headers {
		if h.Name == header {
			return h.Value
		}
	}
	return ""
}

// normalizeMessage converts a raw Gmail message into the canonical
// EmailMessage shape. It is a pure transform: no I/O, and the MIME walk runs
// only when the caller asked for the body.
func normalizeMessage(m *gmail.Message, includeBody bool) EmailMessage {
	email := EmailMessage{
		ID:       m.Id,
		ThreadID: m.ThreadId,
		Subject:  headerValue(m, "Subject"),
		From:     headerValue(m, "From"),
		To:       headerValue(m, "To"),
		Date:     headerValue(m, "Date"),
		Snippet:  m.Snippet,
	}

	if email.Subject == "" {
		email.Subject = noSubjectPlaceholder
	}
	if email.From == "" {
		email.From = unknownPlaceholder
	}
	if email.To == "" {
		email.To = unknownPlaceholder
	}

	if includeBody {
		email.Body = extractBody(m.Payload)
	}

	if len(m.LabelIds) > 0 {
		email.Labels = append([]string(nil), m.LabelIds...)
	}

	return email
}
