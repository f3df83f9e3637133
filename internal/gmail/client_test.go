package gmail

import (
	"context"
	"errors"

	gmail "google.golang.org/api/gmail/v1"
)

// fakeAPI implements the api seam in memory and records the shape of every
// request, so tests can assert on requested formats and payloads without
// network access.
type fakeAPI struct {
	messages    map[string]*gmail.Message
	pages       map[string]*gmail.ListMessagesResponse
	labels      []*gmail.Label
	attachments map[string]*gmail.MessagePartBody

	gotQueries    []string
	gotMaxResults []int64
	gotPageTokens []string
	gotFormats    []string
	modifyReqs    []*gmail.ModifyMessageRequest
	batchReqs     []*gmail.BatchModifyMessagesRequest
	sentRaw       []string
	draftRaw      []string

	listErr   error
	getErrFor map[string]error
	modifyErr error
	batchErr  error
	sendErr   error
	draftErr  error
	attachErr error
	labelsErr error
}

func newFakeClient() (*Client, *fakeAPI) {
	f := &fakeAPI{
		messages:    make(map[string]*gmail.Message),
		pages:       make(map[string]*gmail.ListMessagesResponse),
		attachments: make(map[string]*gmail.MessagePartBody),
		getErrFor:   make(map[string]error),
	}
	return &Client{api: f, account: "default"}, f
}

func (f *fakeAPI) listMessages(ctx context.Context, query string, maxResults int64, pageToken string) (*gmail.ListMessagesResponse, error) {
	f.gotQueries = append(f.gotQueries, query)
	f.gotMaxResults = append(f.gotMaxResults, maxResults)
	f.gotPageTokens = append(f.gotPageTokens, pageToken)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if page, ok := f.pages[pageToken]; ok {
		return page, nil
	}
	return &gmail.ListMessagesResponse{}, nil
}

func (f *fakeAPI) getMessage(ctx context.Context, id, format string) (*gmail.Message, error) {
	f.gotFormats = append(f.gotFormats, format)
	if err := f.getErrFor[id]; err != nil {
		return nil, err
	}
	msg, ok := f.messages[id]
	if !ok {
		return nil, errors.New("message not found: " + id)
	}
	return msg, nil
}

func (f *fakeAPI) modifyMessage(ctx context.Context, id string, req *gmail.ModifyMessageRequest) (*gmail.Message, error) {
	f.modifyReqs = append(f.modifyReqs, req)
	if f.modifyErr != nil {
		return nil, f.modifyErr
	}
	msg, ok := f.messages[id]
	if !ok {
		return nil, errors.New("message not found: " + id)
	}
	msg.LabelIds = applyLabelDelta(msg.LabelIds, req.AddLabelIds, req.RemoveLabelIds)

	// The real modify response carries ids and labels but no payload.
	return &gmail.Message{Id: msg.Id, ThreadId: msg.ThreadId, LabelIds: msg.LabelIds}, nil
}

func (f *fakeAPI) batchModifyMessages(ctx context.Context, req *gmail.BatchModifyMessagesRequest) error {
	f.batchReqs = append(f.batchReqs, req)
	if f.batchErr != nil {
		return f.batchErr
	}
	for _, id := range req.Ids {
		if msg, ok := f.messages[id]; ok {
			msg.LabelIds = applyLabelDelta(msg.LabelIds, req.AddLabelIds, req.RemoveLabelIds)
		}
	}
	return nil
}

func (f *fakeAPI) sendMessage(ctx context.Context, msg *gmail.Message) (*gmail.Message, error) {
	f.sentRaw = append(f.sentRaw, msg.Raw)
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &gmail.Message{Id: "sent1", ThreadId: "thread1"}, nil
}

func (f *fakeAPI) createDraft(ctx context.Context, draft *gmail.Draft) (*gmail.Draft, error) {
	if draft.Message != nil {
		f.draftRaw = append(f.draftRaw, draft.Message.Raw)
	}
	if f.draftErr != nil {
		return nil, f.draftErr
	}
	return &gmail.Draft{
		Id:      "draft1",
		Message: &gmail.Message{Id: "dm1", ThreadId: "dt1"},
	}, nil
}

func (f *fakeAPI) getAttachment(ctx context.Context, messageID, attachmentID string) (*gmail.MessagePartBody, error) {
	if f.attachErr != nil {
		return nil, f.attachErr
	}
	body, ok := f.attachments[attachmentID]
	if !ok {
		return nil, errors.New("attachment not found: " + attachmentID)
	}
	return body, nil
}

func (f *fakeAPI) listLabels(ctx context.Context) (*gmail.ListLabelsResponse, error) {
	if f.labelsErr != nil {
		return nil, f.labelsErr
	}
	return &gmail.ListLabelsResponse{Labels: f.labels}, nil
}

func (f *fakeAPI) getProfile(ctx context.Context) (*gmail.Profile, error) {
	return &gmail.Profile{
		EmailAddress:  "user@example.com",
		MessagesTotal: 42,
		ThreadsTotal:  7,
		HistoryId:     100,
	}, nil
}

func applyLabelDelta(labels, add, remove []string) []string {
	out := make([]string, 0, len(labels)+len(add))
	for _, l := range labels {
		removed := false
		for _, r := range remove {
			if l == r {
				removed = true
				break
			}
		}
		if !removed {
			out = append(out, l)
		}
	}
	for _, a := range add {
		present := false
		for _, l := range out {
			if l == a {
				present = true
				break
			}
		}
		if !present {
			out = append(out, a)
		}
	}
	return out
}
