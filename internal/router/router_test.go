package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/langassess/internal/aiquiz"
	"github.com/saulo-duarte/langassess/internal/assessment"
	"github.com/saulo-duarte/langassess/internal/bank"
	"github.com/saulo-duarte/langassess/internal/config"
	"github.com/saulo-duarte/langassess/internal/router"
	"github.com/saulo-duarte/langassess/internal/upload"
)

type stubProvider struct{}

func (stubProvider) SendPrompt(ctx context.Context, system, user string) ([]aiquiz.Draft, error) {
	return nil, nil
}

func newRouter(t *testing.T, withDrafting bool) http.Handler {
	t.Helper()
	b, err := bank.Default()
	require.NoError(t, err)

	settings := config.Load()
	settings.UploadDir = t.TempDir()

	cfg := router.RouterConfig{
		AssessmentHandler: assessment.NewAssessmentContainer(nil, b, settings).Handler,
		UploadHandler:     upload.NewUploadContainer(nil, settings).Handler,
	}
	if withDrafting {
		cfg.AIQuizHandler = aiquiz.NewHandler(aiquiz.NewService(stubProvider{}))
	}
	return router.New(cfg)
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	h := newRouter(t, false)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"languages", http.MethodGet, "/api/languages", "", http.StatusOK},
		{"start", http.MethodPost, "/api/assessments", `{"languages":["Java"]}`, http.StatusCreated},
		{"unknown attempt", http.MethodGet, "/api/assessments/6b1f5f38-7a43-4b0e-8d7e-2b1f2f2d9c11", "", http.StatusNotFound},
		{"results of unknown attempt", http.MethodGet, "/api/results/6b1f5f38-7a43-4b0e-8d7e-2b1f2f2d9c11", "", http.StatusOK},
		{"upload without file", http.MethodPost, "/api/upload/upload-resume", `{}`, http.StatusBadRequest},
		{"drafting disabled", http.MethodPost, "/api/questions/generate", `{}`, http.StatusNotFound},
		{"preflight", http.MethodOptions, "/api/assessments", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestCorsHeaders(t *testing.T) {
	rec := serve(newRouter(t, false), http.MethodGet, "/api/languages", "")
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestDraftingMountedWhenAvailable(t *testing.T) {
	h := newRouter(t, true)

	rec := serve(h, http.MethodPost, "/api/questions/generate", `{"language":"Python","difficulty":"easy"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
