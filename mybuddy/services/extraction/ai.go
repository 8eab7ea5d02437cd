package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mybuddy/mybuddy/services/llm"
	"mybuddy/mybuddy/utils/jsonutils"
)

const extractionMaxTokens = 1024

// AIExtractor asks a chat model for the Result schema as JSON.
type AIExtractor struct {
	client llm.Client
	model  string
	now    func() time.Time
}

func NewAIExtractor(client llm.Client, model string) *AIExtractor {
	return &AIExtractor{client: client, model: model, now: time.Now}
}

func (a *AIExtractor) Name() string { return "ai" }

func (a *AIExtractor) Extract(ctx context.Context, title, content string) (*Result, error) {
	prompt := buildExtractionPrompt(title, content, a.now().Format("2006-01-02"))
	raw, err := a.client.Run(ctx, llm.ChatRequest{
		Model:     a.model,
		MaxTokens: extractionMaxTokens,
		JSON:      true,
		Messages:  []llm.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, err
	}

	var res Result
	if err := json.Unmarshal([]byte(jsonutils.StripCodeFence(raw)), &res); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}
	res.normalize()
	return &res, nil
}
