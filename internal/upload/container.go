package upload

import (
	"github.com/saulo-duarte/langassess/internal/config"
	"gorm.io/gorm"
)

type UploadContainer struct {
	Handler     *Handler
	Service     UploadService
	RequirePass bool
}

// NewUploadContainer wires the upload relay. A nil db keeps upload records in memory.
func NewUploadContainer(db *gorm.DB, settings config.Settings) *UploadContainer {
	var repo Repository
	if db != nil {
		repo = NewRepository(db)
	} else {
		repo = NewMemoryRepository()
	}

	service := NewService(NewDiskStorage(settings.UploadDir), repo)
	handler := NewHandler(service, settings.UploadMaxBytes)

	return &UploadContainer{
		Handler:     handler,
		Service:     service,
		RequirePass: settings.UploadRequirePass,
	}
}
