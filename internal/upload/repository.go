package upload

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(u *Upload) error
	ListByAttempt(attemptID uuid.UUID) ([]*Upload, error)
}

type uploadRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(u *Upload) error {
	return r.db.Create(u).Error
}

func (r *uploadRepository) ListByAttempt(attemptID uuid.UUID) ([]*Upload, error) {
	var uploads []*Upload
	if err := r.db.
		Where("attempt_id = ?", attemptID).
		Order("created_at DESC").
		Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

type memoryRepository struct {
	mu      sync.RWMutex
	uploads []*Upload
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(u *Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	cp := *u
	r.uploads = append(r.uploads, &cp)
	return nil
}

func (r *memoryRepository) ListByAttempt(attemptID uuid.UUID) ([]*Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Upload
	for i := len(r.uploads) - 1; i >= 0; i-- {
		u := r.uploads[i]
		if u.AttemptID != nil && *u.AttemptID == attemptID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}
