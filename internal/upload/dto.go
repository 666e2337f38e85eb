package upload

import (
	"io"

	"github.com/google/uuid"
)

type UploadResponseDTO struct {
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
}

// Incoming is one file received by the relay.
type Incoming struct {
	Name        string
	ContentType string
	Body        io.Reader
	AttemptID   *uuid.UUID
}
