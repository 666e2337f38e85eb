package aiquiz

import "github.com/saulo-duarte/langassess/internal/bank"

// Draft is a generated question in bank format plus a short explanation for reviewers.
type Draft struct {
	bank.Question
	Explanation string `json:"explanation"`
}

type QuestionRequest struct {
	Language   string `json:"language"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type QuestionResponse struct {
	Language   bank.Language   `json:"language"`
	Difficulty bank.Difficulty `json:"difficulty"`
	Drafts     []Draft         `json:"drafts"`
	Rejected   int             `json:"rejected"`
}
