package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"mybuddy/mybuddy/services/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	reply string
	err   error
	calls []llm.ChatRequest
}

func (f *fakeClient) Run(_ context.Context, req llm.ChatRequest) (string, error) {
	f.calls = append(f.calls, req)
	return f.reply, f.err
}

func TestAIExtractorParsesFencedJSON(t *testing.T) {
	client := &fakeClient{reply: "```json\n" + `{
		"action_items": [{"description": " Send deck ", "due_date": "2026-10-20"}, {"description": ""}],
		"contacts": [{"name": "Ana", "phone": "555", "email": ""}, {"name": " "}],
		"reminders": [{"contact_name": "Ana", "type": "email", "message": "ping Ana", "due_date": ""}]
	}` + "\n```"}
	ai := NewAIExtractor(client, "gpt-test")
	ai.now = func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) }

	res, err := ai.Extract(context.Background(), "Sync", "Send deck to Ana")
	require.NoError(t, err)

	assert.Equal(t, []ActionItem{{Description: "Send deck", DueDate: "2026-10-20"}}, res.ActionItems)
	assert.Equal(t, []Contact{{Name: "Ana", Phone: "555"}}, res.Contacts)
	require.Len(t, res.Reminders, 1)
	assert.Equal(t, "follow_up", res.Reminders[0].Type)

	require.Len(t, client.calls, 1)
	req := client.calls[0]
	assert.Equal(t, "gpt-test", req.Model)
	assert.True(t, req.JSON)
	assert.Contains(t, req.Messages[0].Content, "Note title: Sync")
	assert.Contains(t, req.Messages[0].Content, "Send deck to Ana")
	assert.Contains(t, req.Messages[0].Content, "2026-10-18")
}

func TestAIExtractorErrors(t *testing.T) {
	_, err := NewAIExtractor(&fakeClient{err: errors.New("timeout")}, "m").Extract(context.Background(), "t", "c")
	assert.EqualError(t, err, "timeout")

	_, err = NewAIExtractor(&fakeClient{reply: "not json"}, "m").Extract(context.Background(), "t", "c")
	assert.ErrorContains(t, err, "failed to parse extraction response")
}

func TestImageReaderNotConfigured(t *testing.T) {
	_, err := NewImageReader(nil, "", "OPENAI_API_KEY").ExtractTextFromImage(context.Background(), []byte{1}, "image/png")
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY is required for image text extraction")
}

func TestImageReaderSendsImage(t *testing.T) {
	client := &fakeClient{reply: "hello\nworld"}
	text, err := NewImageReader(client, "vision", "OPENAI_API_KEY").
		ExtractTextFromImage(context.Background(), []byte{1, 2}, "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", text)

	require.Len(t, client.calls, 1)
	msg := client.calls[0].Messages[0]
	assert.Equal(t, imageTextPrompt, msg.Content)
	assert.Equal(t, []llm.Image{{MediaType: "image/webp", Data: []byte{1, 2}}}, msg.Images)
	assert.False(t, client.calls[0].JSON)
}

func TestImageReaderWrapsFailure(t *testing.T) {
	_, err := NewImageReader(&fakeClient{err: errors.New("503")}, "v", "K").
		ExtractTextFromImage(context.Background(), []byte{1}, "image/png")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotConfigured))
}
