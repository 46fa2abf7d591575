package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nexuslabs/summary-engine/pkg/config"
	"github.com/nexuslabs/summary-engine/pkg/textutil"
)

// LocalClient talks to a self-hosted summarization model over HTTP. It is
// the second strategy in the fallback chain and keeps the pipeline working
// without any external API dependency.
type LocalClient struct {
	url    string
	cfg    *config.LocalModelConfig
	client *http.Client
}

func NewLocalClient(cfg *config.LocalModelConfig) *LocalClient {
	return &LocalClient{
		url:    cfg.URL,
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type localRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
	DoSample  bool   `json:"do_sample"`
}

type localResponse struct {
	SummaryText string `json:"summary_text"`
}

func (c *LocalClient) Summarize(ctx context.Context, req Request) (string, error) {
	if c.url == "" {
		return "", fmt.Errorf("local model url not configured")
	}

	text := textutil.TruncateRunes(req.Transcript, c.cfg.MaxChars)

	// do_sample stays false so repeated calls over the same transcript
	// produce the same summary.
	body, err := json.Marshal(localRequest{
		Text:      text,
		MaxLength: c.cfg.MaxLength,
		MinLength: c.cfg.MinLength,
		DoSample:  false,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("local model request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("local model returned status %d", resp.StatusCode)
	}

	var lr localResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("failed to decode local model response: %w", err)
	}

	summary := strings.TrimSpace(lr.SummaryText)
	if summary == "" {
		return "", fmt.Errorf("local model returned blank summary")
	}
	return summary, nil
}
