package container

import (
	"context"
	"log"
	"net/http"

	"github.com/saulo-duarte/langassess/internal/aiquiz"
	"github.com/saulo-duarte/langassess/internal/assessment"
	"github.com/saulo-duarte/langassess/internal/auth"
	"github.com/saulo-duarte/langassess/internal/bank"
	"github.com/saulo-duarte/langassess/internal/config"
	"github.com/saulo-duarte/langassess/internal/router"
	"github.com/saulo-duarte/langassess/internal/upload"
	"gorm.io/gorm"
)

type Container struct {
	Settings            config.Settings
	Bank                *bank.Bank
	AssessmentContainer *assessment.AssessmentContainer
	UploadContainer     *upload.UploadContainer
	AIQuizContainer     *aiquiz.AIQuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()
	settings := config.Current
	logger := config.WithContext(ctx)

	b, err := loadBank(settings.QuestionBankFile)
	if err != nil {
		log.Fatalf("failed to load question bank: %v", err)
	}

	var db *gorm.DB
	if settings.DatabaseDSN != "" {
		if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		if err := config.DB.AutoMigrate(&assessment.AssessmentResult{}, &upload.Upload{}); err != nil {
			log.Fatalf("failed to migrate DB: %v", err)
		}
		db = config.DB
	} else {
		logger.Warn("DATABASE_DSN not set, results and uploads are kept in memory")
	}

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, settings)
	if err != nil {
		logger.WithError(err).Warn("Question drafting disabled")
		aiQuizContainer = nil
	}

	return &Container{
		Settings:            settings,
		Bank:                b,
		AssessmentContainer: assessment.NewAssessmentContainer(db, b, settings),
		UploadContainer:     upload.NewUploadContainer(db, settings),
		AIQuizContainer:     aiQuizContainer,
	}
}

// loadBank reads path when set, otherwise the embedded bank.
func loadBank(path string) (*bank.Bank, error) {
	if path == "" {
		return bank.Default()
	}
	return bank.LoadFile(path)
}

func (c *Container) Router() http.Handler {
	cfg := router.RouterConfig{
		AssessmentHandler: c.AssessmentContainer.Handler,
		UploadHandler:     c.UploadContainer.Handler,
		UploadRequirePass: c.UploadContainer.RequirePass,
	}
	if c.AIQuizContainer != nil {
		cfg.AIQuizHandler = c.AIQuizContainer.Handler
	}
	return router.New(cfg)
}
