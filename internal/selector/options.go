package selector

import "github.com/saulo-duarte/langassess/internal/bank"

// ShuffleOptions returns q with its options in random order and its correct
// indices translated to the new positions. Translation looks up each correct
// option by value, so when two options share the same text every match lands
// on the first occurrence.
func (s *Selector) ShuffleOptions(q bank.Question) bank.Question {
	original := q.Options
	shuffled := ShuffleWith(s.rand, original)

	answer := make(bank.AnswerSet, len(q.Answer))
	for i, ai := range q.Answer {
		answer[i] = indexOf(shuffled, original[ai])
	}

	q.Options = shuffled
	q.Answer = answer
	return q
}

func ShuffleOptions(q bank.Question) bank.Question {
	return New(nil).ShuffleOptions(q)
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}
