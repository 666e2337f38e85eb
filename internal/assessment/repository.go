package assessment

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(r *AssessmentResult) error
	LatestByAttempt(attemptID uuid.UUID) (*AssessmentResult, error)
	ListByAttempt(attemptID uuid.UUID) ([]*AssessmentResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(res *AssessmentResult) error {
	return r.db.Create(res).Error
}

func (r *resultRepository) LatestByAttempt(attemptID uuid.UUID) (*AssessmentResult, error) {
	var res AssessmentResult
	if err := r.db.
		Where("attempt_id = ?", attemptID).
		Order("created_at DESC").
		First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *resultRepository) ListByAttempt(attemptID uuid.UUID) ([]*AssessmentResult, error) {
	var results []*AssessmentResult
	if err := r.db.
		Where("attempt_id = ?", attemptID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// memoryRepository keeps results in process memory when no database is configured.
type memoryRepository struct {
	mu      sync.RWMutex
	results []*AssessmentResult
}

func NewMemoryRepository() ResultRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(res *AssessmentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	cp := *res
	r.results = append(r.results, &cp)
	return nil
}

func (r *memoryRepository) LatestByAttempt(attemptID uuid.UUID) (*AssessmentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].AttemptID == attemptID {
			cp := *r.results[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) ListByAttempt(attemptID uuid.UUID) ([]*AssessmentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*AssessmentResult
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].AttemptID == attemptID {
			cp := *r.results[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}
