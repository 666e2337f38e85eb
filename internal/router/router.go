package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/langassess/internal/aiquiz"
	"github.com/saulo-duarte/langassess/internal/assessment"
	"github.com/saulo-duarte/langassess/internal/middlewares"
	"github.com/saulo-duarte/langassess/internal/upload"
)

type RouterConfig struct {
	AssessmentHandler *assessment.Handler
	UploadHandler     *upload.Handler
	UploadRequirePass bool
	// AIQuizHandler is nil when question drafting is unavailable.
	AIQuizHandler *aiquiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/languages", cfg.AssessmentHandler.ListLanguages)
		r.Get("/results/{attemptID}", cfg.AssessmentHandler.ListResults)
		r.Mount("/assessments", assessment.Routes(cfg.AssessmentHandler))
		r.Mount("/upload", upload.Routes(cfg.UploadHandler, cfg.UploadRequirePass))

		if cfg.AIQuizHandler != nil {
			r.Mount("/questions", aiquiz.Routes(cfg.AIQuizHandler))
		}
	})
	return r
}
