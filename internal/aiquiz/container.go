package aiquiz

import (
	"context"

	"github.com/saulo-duarte/langassess/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
}

// NewAIQuizContainer fails when no Gemini client can be built, e.g. without an API key.
func NewAIQuizContainer(ctx context.Context, settings config.Settings) (*AIQuizContainer, error) {
	provider, err := NewGeminiProvider(ctx, settings.GeminiModel)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}, nil
}
