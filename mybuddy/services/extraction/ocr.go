package extraction

import (
	"context"
	"errors"
	"fmt"

	"mybuddy/mybuddy/services/llm"
	"mybuddy/mybuddy/utils/logging"
)

// ErrNotConfigured is returned when image text extraction has no model credential.
var ErrNotConfigured = errors.New("image text extraction is not configured")

const imageMaxTokens = 4096

// ImageReader turns an image into plain text with a vision-capable model.
// There is no offline fallback.
type ImageReader struct {
	client     llm.Client
	model      string
	credential string
}

// NewImageReader builds a reader. A nil client makes every call fail with
// ErrNotConfigured; credential names the missing setting in that error.
func NewImageReader(client llm.Client, model, credential string) *ImageReader {
	return &ImageReader{client: client, model: model, credential: credential}
}

func (r *ImageReader) ExtractTextFromImage(ctx context.Context, data []byte, mediaType string) (string, error) {
	if r == nil || r.client == nil {
		name := "an API key"
		if r != nil && r.credential != "" {
			name = r.credential
		}
		return "", fmt.Errorf("%w: %s is required for image text extraction", ErrNotConfigured, name)
	}
	defer logging.LogDuration(ctx, "extract_text_from_image")()

	text, err := r.client.Run(ctx, llm.ChatRequest{
		Model:     r.model,
		MaxTokens: imageMaxTokens,
		Messages: []llm.Message{{
			Role:    "user",
			Content: imageTextPrompt,
			Images:  []llm.Image{{MediaType: mediaType, Data: data}},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("image text extraction failed: %w", err)
	}
	return text, nil
}
