package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/langassess/internal/bank"
	"github.com/saulo-duarte/langassess/internal/config"
)

var ErrInvalidRequest = errors.New("invalid draft request")

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) (*QuestionResponse, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// GenerateQuestions returns only the drafts that pass bank validation. Drafts are never added to a bank.
func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) (*QuestionResponse, error) {
	log := config.WithContext(ctx)

	lang, ok := bank.ParseLanguage(req.Language)
	if !ok {
		return nil, fmt.Errorf("%w: unknown language %q", ErrInvalidRequest, req.Language)
	}
	difficulty := bank.Difficulty(req.Difficulty)
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidRequest, req.Difficulty)
	}
	count := clampCount(req.Count)

	drafts, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(lang, difficulty, count))
	if err != nil {
		return nil, err
	}

	resp := &QuestionResponse{Language: lang, Difficulty: difficulty, Drafts: []Draft{}}
	for _, d := range drafts {
		if d.Difficulty == "" {
			d.Difficulty = difficulty
		}
		if err := bank.Validate(d.Question); err != nil || d.Difficulty != difficulty {
			resp.Rejected++
			continue
		}
		if len(resp.Drafts) == count {
			break
		}
		resp.Drafts = append(resp.Drafts, d)
	}

	if resp.Rejected > 0 {
		log.WithField("rejected", resp.Rejected).Warn("Discarded invalid question drafts")
	}
	return resp, nil
}
