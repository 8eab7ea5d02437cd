package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	httputils "mybuddy/mybuddy/utils/http"
	"mybuddy/mybuddy/utils/logging"
)

const (
	OpenAIBaseURL = "https://api.openai.com/v1"
	GroqBaseURL   = "https://api.groq.com/openai/v1"
)

// GPTClient talks to any OpenAI-compatible chat completions endpoint.
type GPTClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewGPTClient(apiKey, baseURL string) *GPTClient {
	if baseURL == "" {
		baseURL = OpenAIBaseURL
	}
	return &GPTClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    defaultHTTPClient(),
	}
}

// NewGroqClient returns a client pointing to Groq's OpenAI-compatible endpoint.
func NewGroqClient(apiKey string) *GPTClient {
	return NewGPTClient(apiKey, GroqBaseURL)
}

// WithHTTPClient swaps the underlying transport; used by tests.
func (c *GPTClient) WithHTTPClient(h *http.Client) *GPTClient {
	c.http = h
	return c
}

type gptContentPart struct {
	Type     string       `json:"type"`
	Text     string       `json:"text,omitempty"`
	ImageURL *gptImageURL `json:"image_url,omitempty"`
}

type gptImageURL struct {
	URL string `json:"url"`
}

type gptMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type gptResponseFormat struct {
	Type string `json:"type"`
}

type gptChatRequest struct {
	Model          string             `json:"model"`
	Messages       []gptMessage       `json:"messages"`
	Stream         bool               `json:"stream"`
	MaxTokens      int                `json:"max_tokens,omitempty"`
	ResponseFormat *gptResponseFormat `json:"response_format,omitempty"`
}

type gptResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Run executes a single GPT completion request (non-streaming)
func (c *GPTClient) Run(ctx context.Context, req ChatRequest) (string, error) {
	defer logging.LogDuration(ctx, "gpt_service_run")()

	gptReq := gptChatRequest{
		Model:     req.Model,
		Stream:    false,
		MaxTokens: req.MaxTokens,
	}
	if req.JSON {
		gptReq.ResponseFormat = &gptResponseFormat{Type: "json_object"}
	}
	for _, m := range req.Messages {
		gptReq.Messages = append(gptReq.Messages, toGPTMessage(m))
	}

	var parsed gptResponse
	if err := httputils.PostJSONWithAuth(ctx, c.http, c.baseURL+"/chat/completions", c.apiKey, gptReq, &parsed); err != nil {
		return "", fmt.Errorf("GPT request failed: %w", err)
	}
	if len(parsed.Choices) > 0 {
		return parsed.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("no content in GPT response")
}

// Images go first as data URLs, followed by the text part.
func toGPTMessage(m Message) gptMessage {
	if len(m.Images) == 0 {
		return gptMessage{Role: m.Role, Content: m.Content}
	}
	parts := make([]gptContentPart, 0, len(m.Images)+1)
	for _, img := range m.Images {
		parts = append(parts, gptContentPart{
			Type:     "image_url",
			ImageURL: &gptImageURL{URL: "data:" + img.MediaType + ";base64," + img.base64()},
		})
	}
	if m.Content != "" {
		parts = append(parts, gptContentPart{Type: "text", Text: m.Content})
	}
	return gptMessage{Role: m.Role, Content: parts}
}
