package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/langassess/internal/bank"
	"github.com/saulo-duarte/langassess/internal/config"
	"github.com/saulo-duarte/langassess/internal/selector"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var (
	ErrAttemptNotFound = errors.New("assessment not found")
	ErrNoLanguages     = errors.New(noLanguagesMsg)
	ErrUnknownLanguage = errors.New("unknown language")
	ErrNoQuestions     = errors.New("no questions available for the selected languages")
)

type AssessmentService interface {
	Languages(ctx context.Context) []bank.LanguageStats
	Start(ctx context.Context, languages []string) (*Snapshot, error)
	Get(ctx context.Context, id string) (*Snapshot, error)
	Toggle(ctx context.Context, id string, option int) (*Snapshot, error)
	Next(ctx context.Context, id string) (*Snapshot, error)
	Prev(ctx context.Context, id string) (*Snapshot, error)
	Submit(ctx context.Context, id string) (*Result, error)
	Restart(ctx context.Context, id string) (*Snapshot, error)
	Result(ctx context.Context, id string) (*Result, error)
	Abandon(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]*AssessmentResult, error)
}

// TokenIssuer signs the upload token handed to a passing candidate.
type TokenIssuer func(attemptID string, score float64) (string, error)

type ServiceConfig struct {
	QuestionsPerTest int
	TimePerQuestion  time.Duration
	NoticeDuration   time.Duration
	PassThreshold    float64
	Scheduler        Scheduler
	IssueToken       TokenIssuer
	// Retention is how long a scored attempt stays live before only its stored result remains.
	Retention time.Duration
}

type assessmentService struct {
	bank     *bank.Bank
	selector *selector.Selector
	repo     ResultRepository
	cfg      ServiceConfig

	mu       sync.RWMutex
	attempts map[uuid.UUID]*Controller
}

func NewService(b *bank.Bank, sel *selector.Selector, repo ResultRepository, cfg ServiceConfig) AssessmentService {
	if cfg.QuestionsPerTest <= 0 {
		cfg.QuestionsPerTest = 10
	}
	if sel == nil {
		sel = selector.New(nil)
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = RealScheduler
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 30 * time.Minute
	}
	return &assessmentService{
		bank:     b,
		selector: sel,
		repo:     repo,
		cfg:      cfg,
		attempts: make(map[uuid.UUID]*Controller),
	}
}

func (s *assessmentService) Languages(ctx context.Context) []bank.LanguageStats {
	return s.bank.Stats()
}

func (s *assessmentService) Start(ctx context.Context, names []string) (*Snapshot, error) {
	log := config.WithContext(ctx)

	langs, err := parseLanguages(names)
	if err != nil {
		log.WithError(err).Warn("Invalid language selection")
		return nil, err
	}

	id := uuid.New()
	c, err := s.newController(id, langs)
	if err != nil {
		log.WithError(err).WithField("languages", langs).Warn("Could not build assessment")
		return nil, err
	}

	s.mu.Lock()
	s.attempts[id] = c
	s.mu.Unlock()

	log.WithFields(logrus.Fields{
		"attempt_id": id,
		"languages":  langs,
		"questions":  c.Snapshot().Total,
	}).Info("Assessment started")

	snap := c.Snapshot()
	return &snap, nil
}

func (s *assessmentService) Get(ctx context.Context, id string) (*Snapshot, error) {
	c, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	snap := c.Snapshot()
	return &snap, nil
}

func (s *assessmentService) Toggle(ctx context.Context, id string, option int) (*Snapshot, error) {
	return s.apply(ctx, id, "toggle", func(c *Controller) error { return c.Toggle(option) })
}

func (s *assessmentService) Next(ctx context.Context, id string) (*Snapshot, error) {
	return s.apply(ctx, id, "next", (*Controller).Next)
}

func (s *assessmentService) Prev(ctx context.Context, id string) (*Snapshot, error) {
	return s.apply(ctx, id, "prev", (*Controller).Prev)
}

func (s *assessmentService) Submit(ctx context.Context, id string) (*Result, error) {
	log := config.WithContext(ctx)

	c, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := c.Submit(); err != nil {
		log.WithError(err).WithField("attempt_id", id).Warn("Submit rejected")
		return nil, err
	}

	res, err := c.Result()
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Restart discards the attempt's controller and replaces it with a freshly
// selected one under the same attempt id.
func (s *assessmentService) Restart(ctx context.Context, id string) (*Snapshot, error) {
	log := config.WithContext(ctx)

	old, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	c, err := s.newController(old.ID(), old.Languages())
	if err != nil {
		log.WithError(err).WithField("attempt_id", id).Warn("Could not rebuild assessment")
		return nil, err
	}

	// Swap only if nothing replaced or removed the attempt in the meantime.
	s.mu.Lock()
	current, ok := s.attempts[old.ID()]
	swapped := ok && current == old
	if swapped {
		s.attempts[old.ID()] = c
	}
	s.mu.Unlock()

	if !swapped {
		c.Close()
		if !ok {
			return nil, ErrAttemptNotFound
		}
		snap := current.Snapshot()
		return &snap, nil
	}
	old.Close()

	log.WithField("attempt_id", id).Info("Assessment restarted")
	snap := c.Snapshot()
	return &snap, nil
}

// Result reads a live attempt, or the latest stored result once the attempt was evicted.
func (s *assessmentService) Result(ctx context.Context, id string) (*Result, error) {
	c, err := s.lookup(id)
	if errors.Is(err, ErrAttemptNotFound) {
		return s.storedResult(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	res, err := c.Result()
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *assessmentService) storedResult(ctx context.Context, id string) (*Result, error) {
	attemptID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrAttemptNotFound
	}
	record, err := s.repo.LatestByAttempt(attemptID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load stored result")
		return nil, err
	}
	if record == nil {
		return nil, ErrAttemptNotFound
	}
	return fromRecord(record)
}

func (s *assessmentService) Abandon(ctx context.Context, id string) error {
	attemptID, err := uuid.Parse(id)
	if err != nil {
		return ErrAttemptNotFound
	}

	s.mu.Lock()
	c, ok := s.attempts[attemptID]
	delete(s.attempts, attemptID)
	s.mu.Unlock()

	if !ok {
		return ErrAttemptNotFound
	}
	c.Close()
	config.WithContext(ctx).WithField("attempt_id", id).Info("Assessment abandoned")
	return nil
}

func (s *assessmentService) History(ctx context.Context, id string) ([]*AssessmentResult, error) {
	attemptID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrAttemptNotFound
	}
	results, err := s.repo.ListByAttempt(attemptID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list assessment results")
		return nil, err
	}
	return results, nil
}

func (s *assessmentService) apply(ctx context.Context, id, action string, fn func(*Controller) error) (*Snapshot, error) {
	c, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		config.WithContext(ctx).WithError(err).WithFields(logrus.Fields{
			"attempt_id": id,
			"action":     action,
		}).Warn("Assessment action rejected")
		return nil, err
	}
	snap := c.Snapshot()
	return &snap, nil
}

func (s *assessmentService) lookup(id string) (*Controller, error) {
	attemptID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrAttemptNotFound
	}

	s.mu.RLock()
	c, ok := s.attempts[attemptID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrAttemptNotFound
	}
	return c, nil
}

func (s *assessmentService) newController(id uuid.UUID, langs []bank.Language) (*Controller, error) {
	questions := s.selector.Select(s.bank.Combined(langs...), s.cfg.QuestionsPerTest)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	c := NewController(id, langs, questions, ControllerOptions{
		TimePerQuestion: countdownTicks(s.cfg.TimePerQuestion),
		NoticeDuration:  s.cfg.NoticeDuration,
		PassThreshold:   s.cfg.PassThreshold,
		Scheduler:       s.cfg.Scheduler,
		IssueToken:      s.issueToken,
		OnScored:        s.onScored,
	})
	c.Begin()
	return c, nil
}

// countdownTicks converts a per-question duration to whole one-second ticks, rounding up.
func countdownTicks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

func (s *assessmentService) issueToken(id uuid.UUID, score float64) string {
	if s.cfg.IssueToken == nil {
		return ""
	}
	token, err := s.cfg.IssueToken(id.String(), score)
	if err != nil {
		config.WithContext(context.Background()).WithError(err).WithField("attempt_id", id).Error("Failed to issue upload token")
		return ""
	}
	return token
}

// onScored persists the result and schedules the attempt's eviction.
func (s *assessmentService) onScored(c *Controller) {
	log := config.WithContext(context.Background()).WithField("attempt_id", c.ID())

	s.cfg.Scheduler.AfterFunc(s.cfg.Retention, func() { s.evict(c) })

	res, err := c.Result()
	if err != nil {
		log.WithError(err).Error("Scored callback without a result")
		return
	}

	record, err := toRecord(res)
	if err != nil {
		log.WithError(err).Error("Failed to encode assessment result")
		return
	}
	if err := s.repo.Create(record); err != nil {
		log.WithError(err).Error("Failed to persist assessment result")
		return
	}

	log.WithFields(logrus.Fields{
		"score":  res.Score,
		"total":  res.Total,
		"passed": res.Passed,
	}).Info("Assessment scored")
}

// evict drops c if it is still the live controller of its attempt.
func (s *assessmentService) evict(c *Controller) {
	s.mu.Lock()
	current, ok := s.attempts[c.ID()]
	if ok && current == c {
		delete(s.attempts, c.ID())
	}
	s.mu.Unlock()

	c.Close()
	config.WithContext(context.Background()).WithField("attempt_id", c.ID()).Debug("Scored assessment evicted")
}

func toRecord(res Result) (*AssessmentResult, error) {
	langs, err := json.Marshal(res.Languages)
	if err != nil {
		return nil, fmt.Errorf("encode languages: %w", err)
	}
	skipped, err := json.Marshal(res.Skipped)
	if err != nil {
		return nil, fmt.Errorf("encode skipped: %w", err)
	}
	feedback, err := json.Marshal(res.Feedback)
	if err != nil {
		return nil, fmt.Errorf("encode feedback: %w", err)
	}

	return &AssessmentResult{
		ID:        uuid.New(),
		AttemptID: res.ID,
		Languages: datatypes.JSON(langs),
		Score:     res.Score,
		Total:     res.Total,
		Passed:    res.Passed,
		Skipped:   datatypes.JSON(skipped),
		Feedback:  datatypes.JSON(feedback),
	}, nil
}

func fromRecord(record *AssessmentResult) (*Result, error) {
	res := &Result{
		ID:      record.AttemptID,
		Score:   record.Score,
		Total:   record.Total,
		Passed:  record.Passed,
		Message: failMessage,
	}
	if record.Passed {
		res.Message = passMessage
	}
	if err := json.Unmarshal(record.Languages, &res.Languages); err != nil {
		return nil, fmt.Errorf("decode languages: %w", err)
	}
	if err := unmarshalOptional(record.Skipped, &res.Skipped); err != nil {
		return nil, fmt.Errorf("decode skipped: %w", err)
	}
	if err := unmarshalOptional(record.Feedback, &res.Feedback); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}
	if res.Skipped == nil {
		res.Skipped = []int{}
	}
	return res, nil
}

func unmarshalOptional(data datatypes.JSON, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func parseLanguages(names []string) ([]bank.Language, error) {
	if len(names) == 0 {
		return nil, ErrNoLanguages
	}

	seen := make(map[bank.Language]bool, len(names))
	langs := make([]bank.Language, 0, len(names))
	for _, n := range names {
		lang, ok := bank.ParseLanguage(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, n)
		}
		if seen[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}
	return langs, nil
}
