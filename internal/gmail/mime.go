package gmail

import (
	"encoding/base64"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

const (
	mimeTextPlain = "text/plain"
	mimeTextHTML  = "text/html"
)

// extractBody pulls the most readable body out of a message part tree.
// Preference order: first text/plain part with content, then first text/html
// part, then the root part's own inline payload. A message with none of
// these yields the no-body placeholder.
func extractBody(root *gmail.MessagePart) string {
	if root == nil {
		return noBodyPlaceholder
	}

	if body := findPartBody(root, mimeTextPlain); body != "" {
		return body
	}
	if body := findPartBody(root, mimeTextHTML); body != "" {
		return body
	}
	if root.Body != nil && root.Body.Data != "" {
		return decodeBodyData(root.Body.Data)
	}

	return noBodyPlaceholder
}

// findPartBody walks the part tree depth-first, left to right, and returns
// the decoded body of the first part with the wanted MIME type and non-empty
// decoded content. The traversal uses an explicit stack so nesting depth is
// bounded by memory, not the goroutine stack.
func findPartBody(root *gmail.MessagePart, mimeType string) string {
	stack := []*gmail.MessagePart{root}

	for len(stack) > 0 {
		part := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if part == nil {
			continue
		}

		if part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
			if body := decodeBodyData(part.Body.Data); body != "" {
				return body
			}
		}

		// Push children in reverse so the leftmost part is visited first.
		for i := len(part.Parts) - 1; i >= 0; i-- {
			stack = append(stack, part.Parts[i])
		}
	}

	return ""
}

// decodeBodyData decodes an inline body payload. Decode failures never
// propagate; the caller gets the decode-error placeholder instead.
func decodeBodyData(data string) string {
	decoded, err := decodeBase64URL(data)
	if err != nil {
		return decodeErrPlaceholder
	}
	return string(decoded)
}

// decodeBase64URL decodes Gmail's base64url payloads. Both padded and
// unpadded forms occur in the wild, so the input is normalized to padded
// standard base64 first.
func decodeBase64URL(data string) ([]byte, error) {
	normalized := strings.ReplaceAll(data, "-", "+")
	normalized = strings.ReplaceAll(normalized, "_", "/")
	if rem := len(normalized) % 4; rem != 0 {
		normalized += strings.Repeat("=", 4-rem)
	}
	return base64.StdEncoding.DecodeString(normalized)
}
