package upload

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/langassess/internal/auth"
	"github.com/saulo-duarte/langassess/internal/config"
)

type Handler struct {
	service  UploadService
	maxBytes int64
}

func NewHandler(s UploadService, maxBytes int64) *Handler {
	return &Handler{service: s, maxBytes: maxBytes}
}

func (h *Handler) UploadResume(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	file, header, err := r.FormFile(FieldName)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.WithField("limit", tooLarge.Limit).Warn("Upload exceeds size limit")
			config.Message(w, http.StatusRequestEntityTooLarge, tooLargeMessage)
			return
		}
		log.WithError(err).Warn("Upload request without a file")
		config.Message(w, http.StatusBadRequest, noFileMessage)
		return
	}
	defer file.Close()

	in := Incoming{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}
	if claims, err := auth.GetPassClaimsFromContext(r.Context()); err == nil {
		if id, err := uuid.Parse(claims.AttemptID); err == nil {
			in.AttemptID = &id
		}
	}

	rec, err := h.service.Store(r.Context(), in)
	switch {
	case errors.Is(err, ErrFileType):
		config.Message(w, http.StatusBadRequest, fileTypeMessage)
		return
	case errors.Is(err, ErrNoFile):
		config.Message(w, http.StatusBadRequest, noFileMessage)
		return
	case err != nil:
		config.Message(w, http.StatusInternalServerError, failedMessage)
		return
	}

	config.JSON(w, http.StatusOK, UploadResponseDTO{Message: successMessage, File: rec.StoredName})
}

func (h *Handler) ListAttemptUploads(w http.ResponseWriter, r *http.Request) {
	attemptID, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		config.Message(w, http.StatusBadRequest, "invalid attempt id")
		return
	}

	uploads, err := h.service.ListByAttempt(r.Context(), attemptID)
	if err != nil {
		config.Message(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if uploads == nil {
		uploads = []*Upload{}
	}

	config.JSON(w, http.StatusOK, uploads)
}
