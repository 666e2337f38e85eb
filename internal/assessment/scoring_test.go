package assessment

import (
	"slices"
	"testing"

	"github.com/saulo-duarte/langassess/internal/bank"
)

func TestGrade(t *testing.T) {
	cases := []struct {
		name    string
		user    []int
		correct bank.AnswerSet
		want    Status
	}{
		{"ExactSingle", []int{0}, bank.AnswerSet{0}, StatusCorrect},
		{"ExtraPick", []int{0, 1}, bank.AnswerSet{0}, StatusPartiallyCorrect},
		{"WrongPick", []int{1}, bank.AnswerSet{0}, StatusWrong},
		{"NoAnswer", nil, bank.AnswerSet{0}, StatusWrong},
		{"ExactMultiAnyOrder", []int{2, 0}, bank.AnswerSet{0, 2}, StatusCorrect},
		{"HalfOfMulti", []int{2}, bank.AnswerSet{0, 2}, StatusPartiallyCorrect},
		{"SameSizeOneWrong", []int{0, 1}, bank.AnswerSet{0, 2}, StatusPartiallyCorrect},
		{"AliasedCorrectSetCannotBeFull", []int{1}, bank.AnswerSet{1, 1}, StatusPartiallyCorrect},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Grade(tc.user, tc.correct); got != tc.want {
				t.Errorf("Grade(%v, %v) = %s, want %s", tc.user, tc.correct, got, tc.want)
			}
		})
	}
}

func TestStatusPoints(t *testing.T) {
	if StatusCorrect.Points() != 1 || StatusPartiallyCorrect.Points() != 0.5 || StatusWrong.Points() != 0 {
		t.Error("unexpected status points")
	}
	if Status("Maybe").IsValid() {
		t.Error("unknown status reported valid")
	}
}

func TestScore(t *testing.T) {
	questions := []bank.Question{
		{Text: "q1", Options: []string{"a", "b"}, Answer: bank.AnswerSet{0}},
		{Text: "q2", Options: []string{"a", "b", "c"}, Answer: bank.AnswerSet{0, 2}},
		{Text: "q3", Options: []string{"a", "b"}, Answer: bank.AnswerSet{1}},
	}
	answers := map[int][]int{
		0: {0},
		1: {2},
	}

	total, feedback := Score(questions, answers)

	if total != 1.5 {
		t.Errorf("total = %v, want 1.5", total)
	}
	want := []Status{StatusCorrect, StatusPartiallyCorrect, StatusWrong}
	for i, f := range feedback {
		if f.Status != want[i] {
			t.Errorf("feedback[%d].Status = %s, want %s", i, f.Status, want[i])
		}
	}
	if !slices.Equal(feedback[1].CorrectAnswers, []string{"a", "c"}) {
		t.Errorf("correct answers = %v", feedback[1].CorrectAnswers)
	}
	if !slices.Equal(feedback[1].UserAnswers, []string{"c"}) {
		t.Errorf("user answers = %v", feedback[1].UserAnswers)
	}
	if len(feedback[2].UserAnswers) != 0 {
		t.Errorf("unanswered question has user answers %v", feedback[2].UserAnswers)
	}
}
