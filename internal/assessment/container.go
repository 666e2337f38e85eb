package assessment

import (
	"github.com/saulo-duarte/langassess/internal/auth"
	"github.com/saulo-duarte/langassess/internal/bank"
	"github.com/saulo-duarte/langassess/internal/config"
	"github.com/saulo-duarte/langassess/internal/selector"
	"gorm.io/gorm"
)

type AssessmentContainer struct {
	Handler *Handler
	Service AssessmentService
}

// NewAssessmentContainer wires the assessment feature. A nil db keeps results in memory.
func NewAssessmentContainer(db *gorm.DB, b *bank.Bank, settings config.Settings) *AssessmentContainer {
	var repo ResultRepository
	if db != nil {
		repo = NewRepository(db)
	} else {
		repo = NewMemoryRepository()
	}

	service := NewService(b, selector.New(nil), repo, ServiceConfig{
		QuestionsPerTest: settings.QuestionsPerTest,
		TimePerQuestion:  settings.TimePerQuestion,
		NoticeDuration:   settings.NoticeDuration,
		PassThreshold:    settings.PassThreshold,
		Scheduler:        RealScheduler,
		Retention:        settings.AttemptRetention,
		IssueToken: func(attemptID string, score float64) (string, error) {
			return auth.GeneratePassToken(attemptID, score, settings.PassTokenTTL)
		},
	})
	handler := NewHandler(service)

	return &AssessmentContainer{
		Handler: handler,
		Service: service,
	}
}
