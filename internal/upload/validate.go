package upload

import (
	"errors"
	"path/filepath"
	"strings"
)

// FieldName is the multipart field carrying the resume.
const FieldName = "resume"

const (
	successMessage  = "Resume uploaded successfully"
	noFileMessage   = "No file uploaded"
	fileTypeMessage = "Only PDF/DOC/DOCX files are allowed"
	tooLargeMessage = "File is too large"
	selectMessage   = "Please select a file"
	failedMessage   = "Upload failed"
)

var (
	ErrNoFile   = errors.New("no file uploaded")
	ErrFileType = errors.New("file type not allowed")
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Extension returns the lower-cased extension of name if it is on the allow-list.
func Extension(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return "", ErrFileType
	}
	return ext, nil
}

// AllowedMIMEType reports whether contentType, ignoring parameters, is an accepted document type.
func AllowedMIMEType(contentType string) bool {
	mt, _, _ := strings.Cut(contentType, ";")
	return allowedMIMETypes[strings.ToLower(strings.TrimSpace(mt))]
}
