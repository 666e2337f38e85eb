package bank

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultData []byte

var ErrInvalidQuestion = errors.New("invalid question")

// Bank maps each language to its ordered question list. It is read-only after load.
type Bank struct {
	questions map[Language][]Question
}

// Default parses the question bank compiled into the binary.
func Default() (*Bank, error) {
	return Parse(defaultData)
}

// LoadFile reads a bank from a YAML file on disk.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Bank, error) {
	var raw map[string][]Question
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	b := &Bank{questions: make(map[Language][]Question, len(AllLanguages))}
	for name, qs := range raw {
		lang := Language(name)
		if !lang.IsValid() {
			return nil, fmt.Errorf("question bank: unknown language %q", name)
		}
		for i, q := range qs {
			if err := Validate(q); err != nil {
				return nil, fmt.Errorf("question bank: %s question %d: %w", lang, i+1, err)
			}
		}
		b.questions[lang] = qs
	}
	return b, nil
}

// Validate checks a single question's shape.
func Validate(q Question) error {
	if q.Text == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidQuestion)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: needs at least two options", ErrInvalidQuestion)
	}
	if len(q.Answer) == 0 {
		return fmt.Errorf("%w: no correct answer", ErrInvalidQuestion)
	}
	for _, a := range q.Answer {
		if a < 0 || a >= len(q.Options) {
			return fmt.Errorf("%w: answer index %d out of range", ErrInvalidQuestion, a)
		}
	}
	if !q.Difficulty.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidQuestion, q.Difficulty)
	}
	return nil
}

// Questions returns the questions for lang. A language with no entry yields an empty list.
func (b *Bank) Questions(lang Language) []Question {
	qs, ok := b.questions[lang]
	if !ok {
		return []Question{}
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Combined concatenates the question lists of langs in the given order.
func (b *Bank) Combined(langs ...Language) []Question {
	var out []Question
	for _, l := range langs {
		out = append(out, b.Questions(l)...)
	}
	return out
}

func (b *Bank) Stats() []LanguageStats {
	stats := make([]LanguageStats, 0, len(AllLanguages))
	for _, lang := range AllLanguages {
		var c DifficultyCount
		for _, q := range b.questions[lang] {
			switch q.Difficulty {
			case Easy:
				c.Easy++
			case Medium:
				c.Medium++
			case Hard:
				c.Hard++
			}
			c.Total++
		}
		stats = append(stats, LanguageStats{Language: lang, Questions: c})
	}
	return stats
}
