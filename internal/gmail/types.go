package gmail

// EmailMessage is the normalized representation of a Gmail message.
// All header-derived fields carry documented placeholder defaults, so a
// consumer never needs to guard against absent values. Instances are
// constructed per call and never mutated afterwards.
type EmailMessage struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId"`
	Subject  string `json:"subject"`
	From     string `json:"from"`
	To       string `json:"to"`
	Date     string `json:"date"`
	Snippet  string `json:"snippet"`

	// Body is populated only when full content was requested; it is never
	// empty in that case because body extraction always yields at least a
	// placeholder.
	Body string `json:"body,omitempty"`

	// Labels preserves the provider's label id order and is omitted when
	// the provider returned none.
	Labels []string `json:"labels,omitempty"`
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Emails        []EmailMessage `json:"emails"`
	TotalEstimate int64          `json:"total_estimate"`
	HasMore       bool           `json:"has_more"`

	// NextPageToken is present iff HasMore is true.
	NextPageToken string `json:"next_page_token,omitempty"`
}

// LabelDelta describes a label mutation. At least one of Add or Remove must
// be non-empty for a mutation call to be accepted.
type LabelDelta struct {
	Add    []string `json:"add,omitempty"`
	Remove []string `json:"remove,omitempty"`
}

// empty reports whether the delta carries no label ids at all.
func (d LabelDelta) empty() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0
}

// MessageRef identifies a message within its thread.
type MessageRef struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId"`
}

// DraftResult is the outcome of creating a draft.
type DraftResult struct {
	ID      string     `json:"id"`
	Message MessageRef `json:"message"`
}

// SendResult is the outcome of sending a message.
type SendResult struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId"`
}

// OutgoingMessage is the input for draft creation and sending.
type OutgoingMessage struct {
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string

	// ContentType selects the body media type: "text/plain" (default when
	// empty) or "text/html". HTML bodies are passed through unsanitized.
	ContentType string
}

// AttachmentInfo describes one attachment part found in a message.
type AttachmentInfo struct {
	MessageID    string `json:"messageId"`
	AttachmentID string `json:"attachmentId"`
	Filename     string `json:"filename"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}

// LabelInfo describes one label from the account's label catalog.
type LabelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
