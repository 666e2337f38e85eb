package aiquiz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/langassess/internal/bank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	drafts []Draft
	err    error
	user   string
}

func (f *fakeProvider) SendPrompt(ctx context.Context, system, user string) ([]Draft, error) {
	f.user = user
	return f.drafts, f.err
}

func draft(text string, answer bank.AnswerSet, d bank.Difficulty) Draft {
	return Draft{Question: bank.Question{
		Text:       text,
		Options:    []string{"a", "b", "c", "d"},
		Answer:     answer,
		Difficulty: d,
	}}
}

func TestBuildUserPrompt(t *testing.T) {
	p := BuildUserPrompt(bank.Python, bank.Hard, 0)
	assert.Contains(t, p, "Write 3 hard")
	assert.Contains(t, p, "Python")

	assert.Contains(t, BuildUserPrompt(bank.Java, bank.Easy, 50), "Write 10 easy")
}

func TestParseDrafts(t *testing.T) {
	raw := "```json\n[{\"question\":\"q\",\"options\":[\"x\",\"y\"],\"answer\":1,\"difficulty\":\"easy\",\"explanation\":\"because\"}]\n```"
	drafts, err := parseDrafts(raw)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, bank.AnswerSet{1}, drafts[0].Answer)
	assert.Equal(t, "because", drafts[0].Explanation)

	_, err = parseDrafts("   ")
	assert.Error(t, err)
	_, err = parseDrafts("not json")
	assert.Error(t, err)
}

func TestGenerateQuestionsFiltersDrafts(t *testing.T) {
	p := &fakeProvider{drafts: []Draft{
		draft("valid", bank.AnswerSet{0, 2}, bank.Medium),
		draft("bad index", bank.AnswerSet{7}, bank.Medium),
		draft("wrong tier", bank.AnswerSet{1}, bank.Hard),
		draft("no tier given", bank.AnswerSet{1}, ""),
	}}
	svc := NewService(p)

	resp, err := svc.GenerateQuestions(context.Background(), QuestionRequest{Language: "node.js", Difficulty: "medium", Count: 4})
	require.NoError(t, err)
	assert.Equal(t, bank.NodeJS, resp.Language)
	assert.Equal(t, 2, resp.Rejected)
	require.Len(t, resp.Drafts, 2)
	assert.Equal(t, "valid", resp.Drafts[0].Text)
	assert.Equal(t, bank.Medium, resp.Drafts[1].Difficulty)
	assert.Contains(t, p.user, "Node.js")
}

func TestGenerateQuestionsValidation(t *testing.T) {
	svc := NewService(&fakeProvider{})

	_, err := svc.GenerateQuestions(context.Background(), QuestionRequest{Language: "COBOL", Difficulty: "easy"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.GenerateQuestions(context.Background(), QuestionRequest{Language: "Java", Difficulty: "extreme"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGenerateQuestionsHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		provider *fakeProvider
		want     int
	}{
		{"created", `{"language":"React","difficulty":"easy","count":1}`, &fakeProvider{drafts: []Draft{draft("q", bank.AnswerSet{0}, bank.Easy)}}, http.StatusCreated},
		{"bad body", `{`, &fakeProvider{}, http.StatusBadRequest},
		{"bad language", `{"language":"Go","difficulty":"easy"}`, &fakeProvider{}, http.StatusBadRequest},
		{"provider failure", `{"language":"React","difficulty":"easy"}`, &fakeProvider{err: errors.New("quota")}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Routes(NewHandler(NewService(tt.provider)))
			req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
