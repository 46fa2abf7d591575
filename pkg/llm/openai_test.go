package llm

import (
	"context"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nexuslabs/summary-engine/pkg/config"
)

type stubCompleter struct {
	resp openai.ChatCompletionResponse
	err  error
	last openai.ChatCompletionRequest
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.last = req
	return s.resp, s.err
}

func openaiTestConfig() *config.OpenAIConfig {
	return &config.OpenAIConfig{
		APIKey:         "test-key",
		Model:          "gpt-4o-mini",
		MaxTokens:      500,
		Temperature:    0.3,
		RequestTimeout: 5 * time.Second,
	}
}

func TestOpenAISummarize(t *testing.T) {
	stub := &stubCompleter{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  A crisp recap.  "}},
			},
		},
	}
	client := &OpenAIClient{client: stub, cfg: openaiTestConfig(), maxInputChars: 8000}

	got, err := client.Summarize(context.Background(), Request{
		Title:            "Sprint Planning",
		DurationSeconds:  1800,
		ParticipantCount: 4,
		Transcript:       "we talked about the sprint",
		TargetLength:     150,
	})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if got != "A crisp recap." {
		t.Fatalf("got %q", got)
	}

	if stub.last.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model %q", stub.last.Model)
	}
	if len(stub.last.Messages) != 2 || stub.last.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("unexpected message layout: %+v", stub.last.Messages)
	}
	prompt := stub.last.Messages[1].Content
	for _, want := range []string{"Sprint Planning", "30 minutes", "Participants: 4", "under 150 words"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestOpenAISummarizeTruncatesTranscript(t *testing.T) {
	stub := &stubCompleter{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "ok"}},
			},
		},
	}
	client := &OpenAIClient{client: stub, cfg: openaiTestConfig(), maxInputChars: 10}

	if _, err := client.Summarize(context.Background(), Request{Transcript: "0123456789abcdef"}); err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	prompt := stub.last.Messages[1].Content
	if strings.Contains(prompt, "abcdef") {
		t.Fatal("transcript was not truncated")
	}
}

func TestOpenAISummarizeMissingKey(t *testing.T) {
	cfg := openaiTestConfig()
	cfg.APIKey = ""
	client := &OpenAIClient{client: &stubCompleter{}, cfg: cfg, maxInputChars: 100}

	if _, err := client.Summarize(context.Background(), Request{}); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestOpenAISummarizeEmptyChoices(t *testing.T) {
	client := &OpenAIClient{client: &stubCompleter{}, cfg: openaiTestConfig(), maxInputChars: 100}
	if _, err := client.Summarize(context.Background(), Request{Transcript: "t"}); err == nil {
		t.Fatal("expected error on empty response")
	}
}
