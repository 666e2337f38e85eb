package aiquiz

import (
	"fmt"

	"github.com/saulo-duarte/langassess/internal/bank"
)

const (
	defaultCount = 3
	maxCount     = 10
)

const systemPrompt = `
You write multiple-choice questions for a programming-language skills assessment.

Rules:
1. Questions are about the requested language or framework only.
2. Each question has exactly 4 options. One or more of them may be correct.
3. Difficulty is one of: easy, medium, hard.
   - easy: syntax, keywords, direct definitions.
   - medium: applying a concept, reading a short snippet.
   - hard: runtime semantics, edge cases, reasoning across several concepts.
4. Options must have similar length and structure. Use plausible distractors.
5. Never reveal the answer in the question text.

Output a pure JSON array, no text outside the JSON:

[
  {
    "question": "<question text>",
    "options": ["...", "...", "...", "..."],
    "answer": [<zero-based indices of the correct options>],
    "difficulty": "<easy | medium | hard>",
    "explanation": "<one or two sentences on why the answer is correct>"
  }
]
`

func clampCount(n int) int {
	if n <= 0 {
		return defaultCount
	}
	if n > maxCount {
		return maxCount
	}
	return n
}

func BuildUserPrompt(lang bank.Language, difficulty bank.Difficulty, count int) string {
	return fmt.Sprintf(
		"Write %d %s multiple-choice questions about %s. "+
			"Every question must use difficulty %q and follow the JSON format from the instructions.",
		clampCount(count), difficulty, lang, difficulty,
	)
}
