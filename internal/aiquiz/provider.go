package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/langassess/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]Draft, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider reads the API key from the environment (GEMINI_API_KEY or GOOGLE_API_KEY).
func NewGeminiProvider(ctx context.Context, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]Draft, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] raw model response:\n%s", raw)

	drafts, err := parseDrafts(raw)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] could not decode model response")
		return nil, err
	}

	log.Infof("[AIQUIZ] model returned %d drafts", len(drafts))
	return drafts, nil
}

// parseDrafts accepts a JSON array, optionally wrapped in a markdown code fence.
func parseDrafts(raw string) ([]Draft, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return nil, errors.New("empty model response")
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var drafts []Draft
	if err := json.Unmarshal([]byte(clean), &drafts); err != nil {
		return nil, fmt.Errorf("decode drafts: %w", err)
	}
	return drafts, nil
}
