package assessment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/langassess/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service AssessmentService
}

func NewHandler(s AssessmentService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Languages(r.Context()))
}

func (h *Handler) StartAssessment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto StartAssessmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body to start assessment")
		config.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.service.Start(r.Context(), dto.Languages)
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, snap)
}

func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	snap, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) ToggleAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto ToggleAnswerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Option == nil {
		log.WithError(err).Warn("Invalid request body to toggle answer")
		config.Message(w, http.StatusBadRequest, "option is required")
		return
	}

	snap, err := h.service.Toggle(r.Context(), chi.URLParam(r, "id"), *dto.Option)
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	snap, err := h.service.Next(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) PrevQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	snap, err := h.service.Prev(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	res, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, res)
}

func (h *Handler) RestartAssessment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	snap, err := h.service.Restart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, snap)
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	res, err := h.service.Result(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, res)
}

func (h *Handler) AbandonAssessment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Abandon(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	results, err := h.service.History(r.Context(), chi.URLParam(r, "attemptID"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	if results == nil {
		results = []*AssessmentResult{}
	}

	config.JSON(w, http.StatusOK, results)
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	switch {
	case errors.Is(err, ErrNoLanguages):
		config.Message(w, http.StatusBadRequest, noLanguagesMsg)
	case errors.Is(err, ErrUnknownLanguage):
		config.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidOption):
		config.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAttemptNotFound):
		config.Message(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAttemptFinished),
		errors.Is(err, ErrNotScored),
		errors.Is(err, ErrNotLastQuestion):
		config.Message(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNoQuestions):
		config.Message(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.WithError(err).Error("Unexpected assessment error")
		config.Message(w, http.StatusInternalServerError, "internal server error")
	}
}
