package upload

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/langassess/internal/config"
	"github.com/sirupsen/logrus"
)

type UploadService interface {
	Store(ctx context.Context, in Incoming) (*Upload, error)
	ListByAttempt(ctx context.Context, attemptID uuid.UUID) ([]*Upload, error)
}

type uploadService struct {
	storage Storage
	repo    Repository
}

func NewService(storage Storage, repo Repository) UploadService {
	return &uploadService{storage: storage, repo: repo}
}

func (s *uploadService) Store(ctx context.Context, in Incoming) (*Upload, error) {
	log := config.WithContext(ctx)

	if in.Body == nil {
		return nil, ErrNoFile
	}
	ext, err := Extension(in.Name)
	if err != nil {
		log.WithField("original_name", in.Name).Warn("Rejected upload with disallowed extension")
		return nil, err
	}

	name, size, err := s.storage.Save(ext, in.Body)
	if err != nil {
		log.WithError(err).Error("Failed to store upload")
		return nil, err
	}

	rec := &Upload{
		ID:           uuid.New(),
		StoredName:   name,
		OriginalName: in.Name,
		ContentType:  in.ContentType,
		Size:         size,
		AttemptID:    in.AttemptID,
	}
	if err := s.repo.Create(rec); err != nil {
		if rmErr := s.storage.Remove(name); rmErr != nil {
			log.WithError(rmErr).WithField("file", name).Warn("Failed to remove orphaned upload")
		}
		log.WithError(err).Error("Failed to record upload")
		return nil, fmt.Errorf("record upload: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":       name,
		"size":       size,
		"attempt_id": in.AttemptID,
	}).Info("Resume stored")
	return rec, nil
}

func (s *uploadService) ListByAttempt(ctx context.Context, attemptID uuid.UUID) ([]*Upload, error) {
	uploads, err := s.repo.ListByAttempt(attemptID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list uploads")
		return nil, err
	}
	return uploads, nil
}
