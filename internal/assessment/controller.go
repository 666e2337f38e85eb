package assessment

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/langassess/internal/bank"
)

var (
	ErrAttemptFinished = errors.New("assessment already submitted")
	ErrNotScored       = errors.New("assessment not submitted yet")
	ErrNotLastQuestion = errors.New("submit is only available on the last question")
	ErrInvalidOption   = errors.New("invalid option")
)

type ControllerOptions struct {
	// TimePerQuestion is the countdown length in ticks.
	TimePerQuestion int
	TickInterval    time.Duration
	NoticeDuration  time.Duration
	PassThreshold   float64
	Scheduler       Scheduler
	// IssueToken signs the upload token of a passing attempt; "" means none.
	IssueToken func(id uuid.UUID, score float64) string
	// OnScored runs once, outside the controller lock, after the attempt is scored.
	OnScored func(c *Controller)
}

func (o ControllerOptions) withDefaults() ControllerOptions {
	if o.TimePerQuestion <= 0 {
		o.TimePerQuestion = 30
	}
	if o.TickInterval <= 0 {
		o.TickInterval = time.Second
	}
	if o.NoticeDuration <= 0 {
		o.NoticeDuration = 2 * time.Second
	}
	if o.PassThreshold <= 0 {
		o.PassThreshold = 6
	}
	if o.Scheduler == nil {
		o.Scheduler = RealScheduler
	}
	return o
}

// Controller owns the mutable state of one attempt. All transitions, including
// timer callbacks, are serialized by mu. A restart builds a new Controller.
type Controller struct {
	mu sync.Mutex

	id        uuid.UUID
	languages []bank.Language
	questions []bank.Question
	opts      ControllerOptions

	state    State
	current  int
	answers  map[int][]int
	skipped  []int
	timeLeft int
	score    float64
	feedback []Feedback
	token    string

	notice      string
	noticeGen   uint64
	noticeTimer Timer

	// timerGen invalidates callbacks of timers that were replaced or stopped.
	timerGen uint64
	timer    Timer
}

func NewController(id uuid.UUID, languages []bank.Language, questions []bank.Question, opts ControllerOptions) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		id:        id,
		languages: slices.Clone(languages),
		questions: questions,
		opts:      opts,
		state:     StateLoading,
		answers:   make(map[int][]int),
		timeLeft:  opts.TimePerQuestion,
	}
}

// Begin moves a loaded attempt into progress and starts the countdown. An
// attempt without questions stays in Loading.
func (c *Controller) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateLoading || len(c.questions) == 0 {
		return
	}
	c.state = StateInProgress
	c.current = 0
	c.resetTimerLocked()
}

func (c *Controller) ID() uuid.UUID { return c.id }

func (c *Controller) Languages() []bank.Language { return slices.Clone(c.languages) }

// Toggle flips option in the current question's answer set.
func (c *Controller) Toggle(option int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.activeLocked(); err != nil {
		return err
	}
	q := c.questions[c.current]
	if option < 0 || option >= len(q.Options) {
		return ErrInvalidOption
	}

	selected := c.answers[c.current]
	if i := slices.Index(selected, option); i >= 0 {
		selected = slices.Delete(slices.Clone(selected), i, i+1)
	} else {
		selected = append(slices.Clone(selected), option)
	}
	c.answers[c.current] = selected

	if len(selected) > 0 {
		c.unskipLocked(c.current)
	}
	return nil
}

// Next skips the current question if unanswered and moves forward unless it is
// the last one. The countdown restarts either way.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.activeLocked(); err != nil {
		return err
	}
	if !c.answeredLocked(c.current) {
		c.skipLocked(c.current)
	}
	if c.current < len(c.questions)-1 {
		c.current++
	}
	c.resetTimerLocked()
	return nil
}

func (c *Controller) Prev() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.activeLocked(); err != nil {
		return err
	}
	if c.current > 0 {
		c.current--
	}
	c.resetTimerLocked()
	return nil
}

// Submit scores the attempt. Manual submission is only possible on the last question.
func (c *Controller) Submit() error {
	c.mu.Lock()
	if err := c.activeLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.current != len(c.questions)-1 {
		c.mu.Unlock()
		return ErrNotLastQuestion
	}
	c.submitLocked()
	c.mu.Unlock()

	c.notifyScored()
	return nil
}

// Close stops every pending timer. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimerLocked()
	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
		c.noticeTimer = nil
	}
	c.noticeGen++
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		ID:              c.id,
		Languages:       slices.Clone(c.languages),
		State:           c.state,
		Index:           c.current,
		Total:           len(c.questions),
		IsLast:          c.current == len(c.questions)-1,
		TimeLeft:        c.timeLeft,
		TimePerQuestion: c.opts.TimePerQuestion,
		Selected:        []int{},
		Skipped:         slices.Clone(c.skipped),
		CurrentSkipped:  slices.Contains(c.skipped, c.current),
		Notice:          c.notice,
	}
	if s.Skipped == nil {
		s.Skipped = []int{}
	}
	if c.state == StateInProgress {
		q := c.questions[c.current]
		s.Question = &PublicQuestion{Text: q.Text, Options: slices.Clone(q.Options)}
		if sel := c.answers[c.current]; len(sel) > 0 {
			s.Selected = slices.Clone(sel)
		}
	}
	return s
}

func (c *Controller) Result() (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateScored {
		return Result{}, ErrNotScored
	}

	passed := c.passedLocked()
	msg := failMessage
	if passed {
		msg = passMessage
	}
	skipped := slices.Clone(c.skipped)
	if skipped == nil {
		skipped = []int{}
	}
	return Result{
		ID:          c.id,
		Languages:   slices.Clone(c.languages),
		Score:       c.score,
		Total:       len(c.questions),
		Passed:      passed,
		Message:     msg,
		Feedback:    slices.Clone(c.feedback),
		Skipped:     skipped,
		UploadToken: c.token,
	}, nil
}

func (c *Controller) activeLocked() error {
	switch c.state {
	case StateScored:
		return ErrAttemptFinished
	case StateInProgress:
		return nil
	default:
		return ErrNoQuestions
	}
}

func (c *Controller) passedLocked() bool {
	return c.score >= c.opts.PassThreshold
}

func (c *Controller) answeredLocked(idx int) bool {
	return len(c.answers[idx]) > 0
}

func (c *Controller) skipLocked(idx int) {
	if !slices.Contains(c.skipped, idx) {
		c.skipped = append(c.skipped, idx)
	}
}

func (c *Controller) unskipLocked(idx int) {
	if i := slices.Index(c.skipped, idx); i >= 0 {
		c.skipped = slices.Delete(c.skipped, i, i+1)
	}
}

func (c *Controller) submitLocked() {
	c.stopTimerLocked()
	c.score, c.feedback = Score(c.questions, c.answers)
	if c.passedLocked() && c.opts.IssueToken != nil {
		c.token = c.opts.IssueToken(c.id, c.score)
	}
	c.state = StateScored
}

func (c *Controller) notifyScored() {
	if c.opts.OnScored != nil {
		c.opts.OnScored(c)
	}
}

func (c *Controller) resetTimerLocked() {
	c.timeLeft = c.opts.TimePerQuestion
	c.armLocked()
}

func (c *Controller) armLocked() {
	c.stopTimerLocked()
	gen := c.timerGen
	c.timer = c.opts.Scheduler.AfterFunc(c.opts.TickInterval, func() {
		c.onTick(gen)
	})
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerGen++
}

func (c *Controller) onTick(gen uint64) {
	c.mu.Lock()
	if gen != c.timerGen || c.state != StateInProgress {
		c.mu.Unlock()
		return
	}

	scored := false
	if c.timeLeft <= 1 {
		scored = c.timeoutLocked()
	} else {
		c.timeLeft--
		c.armLocked()
	}
	c.mu.Unlock()

	if scored {
		c.notifyScored()
	}
}

// timeoutLocked handles an expired countdown and reports whether the attempt
// was submitted as a result.
func (c *Controller) timeoutLocked() bool {
	if !c.answeredLocked(c.current) {
		c.skipLocked(c.current)
		c.showNoticeLocked(timeoutNotice)
	}
	if c.current < len(c.questions)-1 {
		c.current++
		c.resetTimerLocked()
		return false
	}
	c.timeLeft = c.opts.TimePerQuestion
	c.submitLocked()
	return true
}

func (c *Controller) showNoticeLocked(msg string) {
	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
	}
	c.noticeGen++
	gen := c.noticeGen
	c.notice = msg
	c.noticeTimer = c.opts.Scheduler.AfterFunc(c.opts.NoticeDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen == c.noticeGen {
			c.notice = ""
			c.noticeTimer = nil
		}
	})
}
