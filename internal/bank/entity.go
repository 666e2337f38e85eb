package bank

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Question is a bank entry. Answer holds indices into Options.
type Question struct {
	Text       string     `yaml:"question" json:"question"`
	Options    []string   `yaml:"options" json:"options"`
	Answer     AnswerSet  `yaml:"answer" json:"answer"`
	Difficulty Difficulty `yaml:"difficulty" json:"difficulty"`
}

// AnswerSet decodes either a single index or a list of indices.
type AnswerSet []int

func (a *AnswerSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var i int
		if err := value.Decode(&i); err != nil {
			return fmt.Errorf("answer: %w", err)
		}
		*a = AnswerSet{i}
		return nil
	case yaml.SequenceNode:
		var is []int
		if err := value.Decode(&is); err != nil {
			return fmt.Errorf("answer: %w", err)
		}
		*a = AnswerSet(is)
		return nil
	default:
		return fmt.Errorf("answer: line %d: expected an index or a list of indices", value.Line)
	}
}

func (a *AnswerSet) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*a = AnswerSet{i}
		return nil
	}
	var is []int
	if err := json.Unmarshal(data, &is); err != nil {
		return fmt.Errorf("answer: expected an index or a list of indices: %w", err)
	}
	*a = AnswerSet(is)
	return nil
}

// Contains reports whether idx is one of the correct indices.
func (a AnswerSet) Contains(idx int) bool {
	for _, v := range a {
		if v == idx {
			return true
		}
	}
	return false
}

type DifficultyCount struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
	Total  int `json:"total"`
}

type LanguageStats struct {
	Language  Language        `json:"language"`
	Questions DifficultyCount `json:"questions"`
}
