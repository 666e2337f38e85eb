package assessment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.StartAssessment)
	r.Get("/{id}", h.GetAssessment)
	r.Delete("/{id}", h.AbandonAssessment)
	r.Post("/{id}/answers", h.ToggleAnswer)
	r.Post("/{id}/next", h.NextQuestion)
	r.Post("/{id}/prev", h.PrevQuestion)
	r.Post("/{id}/submit", h.SubmitAssessment)
	r.Post("/{id}/restart", h.RestartAssessment)
	r.Get("/{id}/result", h.GetResult)
	return r
}
