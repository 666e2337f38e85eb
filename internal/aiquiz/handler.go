package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/langassess/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.GenerateQuestions(r.Context(), req)
	if errors.Is(err, ErrInvalidRequest) {
		config.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		config.Message(w, http.StatusBadGateway, "failed to generate questions")
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}
