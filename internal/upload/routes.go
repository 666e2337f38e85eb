package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/langassess/internal/auth"
)

func Routes(h *Handler, requirePass bool) http.Handler {
	r := chi.NewRouter()

	r.With(auth.PassTokenMiddleware(requirePass)).Post("/upload-resume", h.UploadResume)
	r.Get("/attempts/{attemptID}", h.ListAttemptUploads)
	return r
}
