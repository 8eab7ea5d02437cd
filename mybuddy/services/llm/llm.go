// mybuddy/services/llm/llm.go
package llm

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	httputils "mybuddy/mybuddy/utils/http"
	"mybuddy/mybuddy/utils/logging"
)

// Client runs a single non-streaming chat completion and returns the
// assistant's text.
type Client interface {
	Run(ctx context.Context, req ChatRequest) (string, error)
}

type ChatRequest struct {
	Model     string
	Messages  []Message
	MaxTokens int
	// JSON asks the provider for a JSON object response when it supports it.
	JSON bool
}

type Message struct {
	Role    string
	Content string
	Images  []Image
}

// Image is an inline image attached to a user message.
type Image struct {
	MediaType string
	Data      []byte
}

func (i Image) base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 120 * time.Second}
}

type OllamaClient struct {
	baseURL string
	http    *http.Client
}

func NewOllamaClient(baseURL string) *OllamaClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434/api"
	}
	return &OllamaClient{baseURL: baseURL, http: defaultHTTPClient()}
}

type ollamaMessage struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   string          `json:"format,omitempty"`
	Options  interface{}     `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// WithHTTPClient swaps the underlying transport; used by tests.
func (c *OllamaClient) WithHTTPClient(h *http.Client) *OllamaClient {
	c.http = h
	return c
}

func (c *OllamaClient) Run(ctx context.Context, req ChatRequest) (string, error) {
	defer logging.LogDuration(ctx, "ollama_service_run")()

	body := ollamaChatRequest{Model: req.Model, Stream: false}
	if req.JSON {
		body.Format = "json"
	}
	if req.MaxTokens > 0 {
		body.Options = map[string]int{"num_predict": req.MaxTokens}
	}
	for _, m := range req.Messages {
		om := ollamaMessage{Role: m.Role, Content: m.Content}
		for _, img := range m.Images {
			om.Images = append(om.Images, img.base64())
		}
		body.Messages = append(body.Messages, om)
	}

	var resp ollamaChatResponse
	if err := httputils.PostJSON(ctx, c.http, c.baseURL+"/chat", body, &resp); err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}
