package selector

import "github.com/saulo-duarte/langassess/internal/bank"

type Selector struct {
	rand Rand
}

// New returns a Selector drawing from r, or from the process-wide source when r is nil.
func New(r Rand) *Selector {
	if r == nil {
		r = globalRand{}
	}
	return &Selector{rand: r}
}

// Quota is how many questions of each tier a test of a given size asks for.
type Quota struct {
	Easy   int
	Medium int
	Hard   int
}

func QuotaFor(total int) Quota {
	if total <= 0 {
		return Quota{}
	}
	easy := total / 3
	medium := total * 4 / 10
	return Quota{Easy: easy, Medium: medium, Hard: total - easy - medium}
}

// SelectBalanced takes up to the quota from each difficulty tier, each tier
// shuffled before truncation, then shuffles the combined slice. Tiers that run
// short are not backfilled, so the result may hold fewer than total questions.
func (s *Selector) SelectBalanced(questions []bank.Question, total int) []bank.Question {
	var easy, medium, hard []bank.Question
	for _, q := range questions {
		switch q.Difficulty {
		case bank.Easy:
			easy = append(easy, q)
		case bank.Medium:
			medium = append(medium, q)
		case bank.Hard:
			hard = append(hard, q)
		}
	}

	quota := QuotaFor(total)
	selected := make([]bank.Question, 0, max(total, 0))
	selected = append(selected, take(ShuffleWith(s.rand, easy), quota.Easy)...)
	selected = append(selected, take(ShuffleWith(s.rand, medium), quota.Medium)...)
	selected = append(selected, take(ShuffleWith(s.rand, hard), quota.Hard)...)

	return ShuffleWith(s.rand, selected)
}

// Select builds a test: a balanced subset with every question's options reshuffled.
func (s *Selector) Select(questions []bank.Question, total int) []bank.Question {
	balanced := s.SelectBalanced(questions, total)
	out := make([]bank.Question, len(balanced))
	for i, q := range balanced {
		out[i] = s.ShuffleOptions(q)
	}
	return out
}

func SelectBalanced(questions []bank.Question, total int) []bank.Question {
	return New(nil).SelectBalanced(questions, total)
}

func take(qs []bank.Question, n int) []bank.Question {
	if n < 0 {
		n = 0
	}
	if len(qs) < n {
		return qs
	}
	return qs[:n]
}
