package assessment

import "github.com/saulo-duarte/langassess/internal/bank"

// Grade compares a user's selection with the correct set. Equal size with every
// pick correct is Correct; any overlap short of that is Partially Correct.
func Grade(user []int, correct bank.AnswerSet) Status {
	full := len(user) == len(correct)
	partial := false
	for _, a := range user {
		if correct.Contains(a) {
			partial = true
		} else {
			full = false
		}
	}

	switch {
	case full:
		return StatusCorrect
	case partial:
		return StatusPartiallyCorrect
	default:
		return StatusWrong
	}
}

// Score grades every question and returns the total with per-question feedback.
func Score(questions []bank.Question, answers map[int][]int) (float64, []Feedback) {
	var total float64
	feedback := make([]Feedback, len(questions))

	for i, q := range questions {
		user := answers[i]
		status := Grade(user, q.Answer)
		total += status.Points()

		feedback[i] = Feedback{
			Question:       q.Text,
			Options:        q.Options,
			CorrectAnswers: optionTexts(q.Options, q.Answer),
			UserAnswers:    optionTexts(q.Options, user),
			Status:         status,
		}
	}
	return total, feedback
}

func optionTexts(options []string, indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(options) {
			out = append(out, options[i])
		}
	}
	return out
}
