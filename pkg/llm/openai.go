package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nexuslabs/summary-engine/pkg/config"
	"github.com/nexuslabs/summary-engine/pkg/textutil"
)

const systemPrompt = "You are an expert meeting summarizer. Produce clear, concise, actionable summaries."

// chatCompleter is the slice of the OpenAI client we actually use, kept as
// an interface so tests can stub completions.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient summarizes transcripts through a chat-completion endpoint.
type OpenAIClient struct {
	client        chatCompleter
	cfg           *config.OpenAIConfig
	maxInputChars int
}

func NewOpenAIClient(cfg *config.OpenAIConfig, maxInputChars int) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client:        openai.NewClientWithConfig(clientCfg),
		cfg:           cfg,
		maxInputChars: maxInputChars,
	}
}

func (c *OpenAIClient) Summarize(ctx context.Context, req Request) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("openai api key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: c.buildPrompt(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("model returned blank summary")
	}
	return summary, nil
}

func (c *OpenAIClient) buildPrompt(req Request) string {
	transcript := textutil.TruncateRunes(req.Transcript, c.maxInputChars)

	var sb strings.Builder
	sb.WriteString("Summarize the following meeting transcript into a short executive summary.\n\n")
	fmt.Fprintf(&sb, "Meeting title: %s\n", req.Title)
	fmt.Fprintf(&sb, "Duration: %d minutes\n", req.DurationSeconds/60)
	fmt.Fprintf(&sb, "Participants: %d\n", req.ParticipantCount)
	if req.TargetLength > 0 {
		fmt.Fprintf(&sb, "Keep the summary under %d words.\n", req.TargetLength)
	}
	sb.WriteString("\nTranscript:\n")
	sb.WriteString(transcript)
	return sb.String()
}
