package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"dasbor/internal/dashboard"

	"google.golang.org/genai"
)

// DefaultModel answers dashboard questions unless configuration overrides it.
const DefaultModel = "gemini-2.0-flash"

// Advisor answers free-form questions about an assembled snapshot.
type Advisor struct {
	client *genai.Client
	model  string
}

// NewAdvisor creates the model client. Credentials come from the standard
// GOOGLE_API_KEY / GEMINI_API_KEY environment, handled by the SDK itself.
func NewAdvisor(ctx context.Context, model string) (*Advisor, error) {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Advisor{client: client, model: model}, nil
}

// Ask grounds the question in the snapshot and returns the model's answer.
func (a *Advisor) Ask(ctx context.Context, snap *dashboard.Snapshot, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", errors.New("empty question")
	}

	prompt := BuildPrompt(snap, question)
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", errors.New("empty response from model")
	}

	slog.InfoContext(ctx, "Advisor answered",
		"model", a.model,
		"prompt_chars", len(prompt),
		"answer_chars", len(answer))
	return answer, nil
}
